package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

var (
	ErrEmptyParameter = errors.New("empty parameter")
)

// ParseIDParam reads a path parameter as a uint. Values that do not fit the
// platform uint are rejected instead of truncated.
func ParseIDParam(c *gin.Context, param string) (uint, error) {
	return parseUint(c.Param(param))
}

func ParseQueryUintParam(c *gin.Context, param string) (uint, error) {
	valStr := c.Query(param)
	if valStr == "" {
		return 0, ErrEmptyParameter
	}
	return parseUint(valStr)
}

func parseUint(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, strconv.IntSize)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}
