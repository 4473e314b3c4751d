package http

import (
	"github.com/gin-gonic/gin"

	"emotion-assistant/internal/model"
	"emotion-assistant/pkg/scope"
)

func (h *handler) processSignupReq(c *gin.Context) (signupReq, error) {
	var req signupReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

// scopeFrom reads the caller attached by middleware.Auth.
func scopeFrom(c *gin.Context) (model.Scope, bool) {
	p, ok := scope.GetPayloadFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, false
	}
	return model.NewScope(p), true
}
