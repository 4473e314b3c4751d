package http

import (
	"github.com/gin-gonic/gin"

	"emotion-assistant/internal/middleware"
)

// RegisterRoutes maps /bookmarks onto rg. Every route requires auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	bookmarks := rg.Group("/bookmarks", mw.Auth())
	{
		bookmarks.POST("", h.Add)
		bookmarks.GET("", h.List)
		bookmarks.PUT("/:id", h.Update)
		bookmarks.DELETE("/:id", h.Delete)
	}
}
