package http

import (
	"emotion-assistant/internal/conversation"
	"emotion-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc conversation.UseCase
}

// New creates the HTTP handler for the chat endpoint.
func New(l log.Logger, uc conversation.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
