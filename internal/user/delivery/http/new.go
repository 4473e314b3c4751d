package http

import (
	"emotion-assistant/internal/middleware"
	"emotion-assistant/internal/user"
	"emotion-assistant/pkg/log"
)

type handler struct {
	l      log.Logger
	uc     user.UseCase
	cookie middleware.CookieConfig
}

// New creates the HTTP handler for the user domain.
func New(l log.Logger, uc user.UseCase, cookie middleware.CookieConfig) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		cookie: cookie,
	}
}
