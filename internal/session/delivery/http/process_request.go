package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"emotion-assistant/internal/model"
	"emotion-assistant/pkg/scope"
)

// processCreateReq accepts an empty body as an untitled session.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}

func scopeFrom(c *gin.Context) (model.Scope, bool) {
	p, ok := scope.GetPayloadFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, false
	}
	return model.NewScope(p), true
}
