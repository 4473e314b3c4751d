package http

import (
	"github.com/gin-gonic/gin"

	"emotion-assistant/internal/middleware"
	"emotion-assistant/pkg/response"
)

// Signup godoc
// @Summary     Sign up
// @Description Registers an account and sets the auth cookie.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body signupReq true "Account data"
// @Success     200 {object} userResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Email already registered"
// @Router      /api/signup [POST]
func (h *handler) Signup(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSignupReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	out, err := h.uc.Signup(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Signup: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	middleware.SetAuthCookie(c, h.cookie, out.Token)
	response.OK(c, newUserResp(out.User))
}

// Login godoc
// @Summary     Log in
// @Description Checks the credentials and sets the auth cookie.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} userResp
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Router      /api/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	out, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	middleware.SetAuthCookie(c, h.cookie, out.Token)
	response.OK(c, newUserResp(out.User))
}

// Logout godoc
// @Summary     Log out
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	middleware.ClearAuthCookie(c, h.cookie)
	response.OK(c, nil)
}

// Status godoc
// @Summary     Current user
// @Tags        Auth
// @Produce     json
// @Success     200 {object} statusResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/status [GET]
func (h *handler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFrom(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	u, err := h.uc.Status(ctx, sc)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newStatusResp(u))
}

// DeleteAccount godoc
// @Summary     Delete account
// @Description Deletes the caller with their sessions, logs and bookmarks, and clears the cookie.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/delete-account [DELETE]
func (h *handler) DeleteAccount(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFrom(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.DeleteAccount(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.DeleteAccount: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	middleware.ClearAuthCookie(c, h.cookie)
	response.OK(c, nil)
}
