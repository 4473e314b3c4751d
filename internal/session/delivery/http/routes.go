package http

import (
	"github.com/gin-gonic/gin"

	"emotion-assistant/internal/middleware"
)

// RegisterRoutes maps /sessions onto rg. Every route requires auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sessions := rg.Group("/sessions", mw.Auth())
	{
		sessions.POST("", h.Create)
		sessions.GET("", h.List)
		sessions.GET("/:id/logs", h.Logs)
		sessions.DELETE("/:id", h.Delete)
	}
}
