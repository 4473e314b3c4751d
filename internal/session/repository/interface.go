package repository

import (
	"context"

	"emotion-assistant/internal/model"
)

// Repository is the composed interface for the session domain data store.
type Repository interface {
	SessionRepository
	LogRepository
}

type SessionRepository interface {
	CreateSession(ctx context.Context, opt CreateSessionOptions) (model.ChatSession, error)
	// GetOneSession returns a zero session (ID == "") when nothing matches.
	GetOneSession(ctx context.Context, opt GetOneSessionOptions) (model.ChatSession, error)
	ListSessions(ctx context.Context, opt ListSessionsOptions) ([]model.ChatSession, error)
	DeleteSession(ctx context.Context, id string) error
}

type LogRepository interface {
	CreateLog(ctx context.Context, opt CreateLogOptions) (model.ChatLog, error)
	ListLogs(ctx context.Context, opt ListLogsOptions) ([]model.ChatLog, error)
	ListRecentFoods(ctx context.Context, opt ListRecentFoodsOptions) ([]string, error)
}
