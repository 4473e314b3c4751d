package conversation

import (
	"context"

	"emotion-assistant/internal/model"
	"emotion-assistant/internal/router"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Respond answers one chat message and persists both sides of the exchange.
	Respond(ctx context.Context, sc model.Scope, input RespondInput) (RespondOutput, error)
}

// Router is satisfied by *router.IntegratedRouter.
type Router interface {
	Route(ctx context.Context, in router.Input) (router.Output, error)
}

// HistoryRestorer rebuilds the in-memory chat history of a session from its
// stored logs, e.g. after a restart. Satisfied by *assistant.Assistant.
type HistoryRestorer interface {
	HasHistory(sessionID string) bool
	RestoreHistory(sessionID string, msgs []model.ChatMessage)
}
