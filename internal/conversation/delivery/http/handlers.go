package http

import (
	"github.com/gin-gonic/gin"

	"emotion-assistant/pkg/response"
)

// GetResponse godoc
// @Summary     Answer a chat message
// @Description Starts a session when session_id is empty. Emotion messages get a food and a nearby restaurant.
// @Tags        Conversation
// @Accept      json,x-www-form-urlencoded
// @Produce     json
// @Param       body body respondReq true "Message"
// @Success     200 {object} respondResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/get_response [POST]
func (h *handler) GetResponse(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFrom(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processRespondReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	out, err := h.uc.Respond(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Respond: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRespondResp(out))
}
