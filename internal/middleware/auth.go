package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"multilingual-tool-router/pkg/response"
)

// Auth validates the bearer token on protected routes. A no-op when
// auth is disabled in config.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.config.Auth.Enabled {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if subtle.ConstantTimeCompare([]byte(token), []byte(m.config.Auth.Token)) != 1 {
			m.l.Warnf(c.Request.Context(), "internal.middleware.Auth: invalid token from %s", c.ClientIP())
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
