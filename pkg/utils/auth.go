package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/recruit-go/pkg/types"
)

var GetUserIDFromContext = func(c *gin.Context) (uint, error) {
	claims, err := claimsFromContext(c)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

func claimsFromContext(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, errors.New("user claims not found in context")
	}
	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid user claims type")
	}
	return claims, nil
}
