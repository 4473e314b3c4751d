package http

import (
	"emotion-assistant/internal/session"
	"emotion-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc session.UseCase
}

// New creates the HTTP handler for chat sessions.
func New(l log.Logger, uc session.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
