package http

import (
	"github.com/gin-gonic/gin"

	"emotion-assistant/internal/middleware"
)

// RegisterRoutes maps the chat endpoint onto rg. Auth runs before the rate
// limiter so buckets are keyed per user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/get_response", mw.Auth(), mw.RateLimit(), h.GetResponse)
}
