package http

import (
	"github.com/gin-gonic/gin"

	"emotion-assistant/pkg/response"
)

// Create godoc
// @Summary     Create a chat session
// @Tags        Sessions
// @Accept      json
// @Produce     json
// @Param       body body createReq false "Session title"
// @Success     200 {object} sessionResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/sessions [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFrom(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	s, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(s))
}

// List godoc
// @Summary     List chat sessions
// @Description Newest first, each with its last message.
// @Tags        Sessions
// @Produce     json
// @Success     200 {array} sessionResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/sessions [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFrom(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	sessions, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionListResp(sessions))
}

// Logs godoc
// @Summary     Chat logs of a session
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {array} logResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /api/sessions/{id}/logs [GET]
func (h *handler) Logs(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFrom(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	logs, err := h.uc.Logs(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Logs: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newLogListResp(logs))
}

// Delete godoc
// @Summary     Delete a chat session
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /api/sessions/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFrom(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
