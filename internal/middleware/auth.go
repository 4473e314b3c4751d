package middleware

import (
	"github.com/gin-gonic/gin"

	"emotion-assistant/pkg/response"
	"emotion-assistant/pkg/scope"
)

// Auth verifies the token cookie and attaches the caller to the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, err := c.Cookie(m.cookie.Name)
		if err != nil || token == "" {
			response.Unauthorized(c)
			return
		}

		payload, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Debugf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		c.Request = c.Request.WithContext(scope.SetPayloadToContext(ctx, payload))
		c.Next()
	}
}
