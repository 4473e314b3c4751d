package dispatcher

import (
	"context"

	"emotion-assistant/internal/classifier"
	"emotion-assistant/pkg/log"
)

// GeneralChat answers a query with the session's conversation context.
type GeneralChat interface {
	Chat(ctx context.Context, sessionID, query string) (string, error)
}

// RealtimeSearch answers a query from live web results.
type RealtimeSearch interface {
	Search(ctx context.Context, sessionID, query string) (string, error)
}

// AppController starts and stops local applications. Calls are best effort
// and report nothing back.
type AppController interface {
	Open(ctx context.Context, name string)
	Close(ctx context.Context, name string)
}

// Dispatcher runs directives against their handlers.
type Dispatcher interface {
	Dispatch(ctx context.Context, sessionID string, directives []classifier.Directive) (string, error)
}

type implDispatcher struct {
	chat   GeneralChat
	search RealtimeSearch
	apps   AppController
	l      log.Logger
}

var _ Dispatcher = (*implDispatcher)(nil)

func New(chat GeneralChat, search RealtimeSearch, apps AppController, l log.Logger) Dispatcher {
	return &implDispatcher{
		chat:   chat,
		search: search,
		apps:   apps,
		l:      l,
	}
}
