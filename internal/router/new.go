package router

import (
	"context"

	"emotion-assistant/internal/classifier"
	"emotion-assistant/internal/dispatcher"
	"emotion-assistant/pkg/log"
)

// Router is the entry point for free-text utterances.
type Router interface {
	Route(ctx context.Context, in Input) (Output, error)
}

// IntegratedRouter applies the fixed short-circuits and fast paths before
// falling back to classification and dispatch.
type IntegratedRouter struct {
	classifier classifier.Classifier
	dispatcher dispatcher.Dispatcher
	search     dispatcher.RealtimeSearch
	l          log.Logger
}

var _ Router = (*IntegratedRouter)(nil)

// New creates a new IntegratedRouter
func New(c classifier.Classifier, d dispatcher.Dispatcher, search dispatcher.RealtimeSearch, l log.Logger) *IntegratedRouter {
	return &IntegratedRouter{
		classifier: c,
		dispatcher: d,
		search:     search,
		l:          l,
	}
}
