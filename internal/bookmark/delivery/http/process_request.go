package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"emotion-assistant/internal/model"
	"emotion-assistant/pkg/scope"
)

var errInvalidID = errors.New("id must be a positive integer")

func (h *handler) processAddReq(c *gin.Context) (addReq, error) {
	var req addReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := parseID(c)
	if err != nil {
		return req, err
	}
	req.ID = id
	return req, nil
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

func scopeFrom(c *gin.Context) (model.Scope, bool) {
	p, ok := scope.GetPayloadFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, false
	}
	return model.NewScope(p), true
}
