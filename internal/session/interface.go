package session

import (
	"context"

	"emotion-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.ChatSession, error)
	List(ctx context.Context, sc model.Scope) ([]model.ChatSession, error)
	// Detail returns ErrForbidden when the session is missing or owned by someone else.
	Detail(ctx context.Context, sc model.Scope, id string) (model.ChatSession, error)
	Logs(ctx context.Context, sc model.Scope, id string) ([]model.ChatLog, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	SaveLog(ctx context.Context, sc model.Scope, input SaveLogInput) (model.ChatLog, error)
	// RecentFoods lists the caller's recommended foods, most recent first.
	RecentFoods(ctx context.Context, sc model.Scope, limit int) ([]string, error)
}

// Forgetter drops per-session in-memory state when a session is deleted.
type Forgetter interface {
	Forget(sessionID string)
}
