package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/linskybing/recruit-go/internal/domain/user"
	"github.com/linskybing/recruit-go/internal/repository"
	"github.com/linskybing/recruit-go/pkg/response"
	"github.com/linskybing/recruit-go/pkg/types"
)

// Auth handles role checks on top of JWT identity.
type Auth struct {
	repos *repository.Repos
}

func NewAuth(repos *repository.Repos) *Auth {
	return &Auth{repos: repos}
}

// RequireRole lets admins and holders of any listed role through.
func (a *Auth) RequireRole(roles ...user.RoleName) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail("Invalid token claims"))
			return
		}
		if claims.IsAdmin {
			c.Next()
			return
		}
		users := a.repos.WithContext(c.Request.Context()).User
		for _, role := range append([]user.RoleName{user.RoleAdmin}, roles...) {
			has, err := users.HasRole(claims.UserID, role)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, response.Fail("internal error"))
				return
			}
			if has {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, response.Fail("insufficient role"))
	}
}

// LoggingMiddleware logs method, path, status and latency.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("[http] %s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// CORSMiddleware allows local development origins plus any listed in allowed.
func CORSMiddleware(allowed ...string) gin.HandlerFunc {
	config := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "http://127.0.0.1:") {
				return true
			}
			for _, o := range allowed {
				if o != "" && origin == o {
					return true
				}
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	return cors.New(config)
}
