package http

import (
	"emotion-assistant/internal/bookmark"
	"emotion-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc bookmark.UseCase
}

func New(l log.Logger, uc bookmark.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
