package http

import (
	"github.com/gin-gonic/gin"

	"emotion-assistant/pkg/response"
)

// Add godoc
// @Summary     Add a bookmark
// @Tags        Bookmarks
// @Accept      json
// @Produce     json
// @Param       body body addReq true "Bookmark"
// @Success     200 {object} bookmarkResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/bookmarks [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFrom(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processAddReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	b, err := h.uc.Add(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBookmarkResp(b))
}

// List godoc
// @Summary     List bookmarks
// @Tags        Bookmarks
// @Produce     json
// @Success     200 {array} bookmarkResp
// @Router      /api/bookmarks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFrom(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	bs, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBookmarkListResp(bs))
}

// Update godoc
// @Summary     Rename a bookmark
// @Tags        Bookmarks
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Bookmark ID"
// @Param       body body updateReq true "New name (and optional url)"
// @Success     200 {object} bookmarkResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/bookmarks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFrom(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	b, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBookmarkResp(b))
}

// Delete godoc
// @Summary     Delete a bookmark
// @Tags        Bookmarks
// @Produce     json
// @Param       id path int true "Bookmark ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/bookmarks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFrom(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := parseID(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
