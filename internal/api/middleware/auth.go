package middleware

import (
	"Viewy/internal/pkg/logger"
	"Viewy/internal/pkg/response"
	"Viewy/internal/pkg/security"
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware rejects requests without a valid bearer token and puts user_id on the context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.Unauthorized, "missing or malformed token")
			c.Abort()
			return
		}

		claims, err := security.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			response.Fail(c, response.Unauthorized, security.ErrTokenInvalid.Error())
			c.Abort()
			return
		}

		setViewer(c, claims)
		c.Next()
	}
}

func setViewer(c *gin.Context, claims *security.UserClaims) {
	c.Set("user_id", claims.UserID)
	c.Set("roles", claims.Roles)

	newCtx := context.WithValue(c.Request.Context(), logger.UserIDKey, claims.UserID)
	c.Request = c.Request.WithContext(newCtx)
}
