package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/recruit-go/internal/application"
	"github.com/linskybing/recruit-go/pkg/response"
	"github.com/linskybing/recruit-go/pkg/utils"
)

// writeError maps workflow error kinds to HTTP status codes.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrNotFound):
		c.JSON(http.StatusNotFound, response.Fail(err.Error()))
	case errors.Is(err, application.ErrBadRequest):
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
	case errors.Is(err, application.ErrConflict):
		c.JSON(http.StatusConflict, response.Fail(err.Error()))
	default:
		log.Printf("[http] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, response.Fail("internal error"))
	}
}

func badInput(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
}

// idParam parses a uint path parameter, writing 400 on failure.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := utils.ParseIDParam(c, name)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, response.Fail("Invalid "+name))
		return 0, false
	}
	return id, true
}

// actor returns the acting user id, writing 401 when claims are missing.
func actor(c *gin.Context) (uint, bool) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Fail("Unauthorized"))
		return 0, false
	}
	return uid, true
}
