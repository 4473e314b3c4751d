package http

import (
	"github.com/gin-gonic/gin"

	"emotion-assistant/internal/middleware"
)

// RegisterRoutes maps the account endpoints onto rg (mounted at /api).
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/signup", h.Signup)
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
	rg.GET("/status", mw.Auth(), h.Status)
	rg.DELETE("/delete-account", mw.Auth(), h.DeleteAccount)
}
