package http

import (
	"github.com/gin-gonic/gin"

	"emotion-assistant/internal/model"
	"emotion-assistant/pkg/scope"
)

// processRespondReq binds by Content-Type, so form posts keep working.
func (h *handler) processRespondReq(c *gin.Context) (respondReq, error) {
	var req respondReq
	err := c.ShouldBind(&req)
	return req, err
}

func scopeFrom(c *gin.Context) (model.Scope, bool) {
	p, ok := scope.GetPayloadFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, false
	}
	return model.NewScope(p), true
}
