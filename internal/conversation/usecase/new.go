package usecase

import (
	"math/rand/v2"
	"time"

	"emotion-assistant/internal/conversation"
	"emotion-assistant/internal/recommend"
	"emotion-assistant/internal/session"
	"emotion-assistant/pkg/log"
	"emotion-assistant/pkg/places"
)

type Config struct {
	DefaultLocation  string
	RecentFoodWindow int
}

type implUseCase struct {
	sessionUC session.UseCase
	router    conversation.Router
	resolver  recommend.Resolver
	finder    places.Finder // nil disables the restaurant lookup
	restorer  conversation.HistoryRestorer
	cfg       Config
	pick      func(n int) int
	now       func() time.Time
	l         log.Logger
}

var _ conversation.UseCase = (*implUseCase)(nil)

// New creates the conversation UseCase. finder and restorer may be nil.
func New(
	sessionUC session.UseCase,
	router conversation.Router,
	resolver recommend.Resolver,
	finder places.Finder,
	restorer conversation.HistoryRestorer,
	cfg Config,
	l log.Logger,
) *implUseCase {
	if cfg.DefaultLocation == "" {
		cfg.DefaultLocation = conversation.DefaultLocation
	}
	if cfg.RecentFoodWindow < 1 {
		cfg.RecentFoodWindow = recommend.DefaultRecentWindow
	}
	return &implUseCase{
		sessionUC: sessionUC,
		router:    router,
		resolver:  resolver,
		finder:    finder,
		restorer:  restorer,
		cfg:       cfg,
		pick:      rand.IntN,
		now:       time.Now,
		l:         l,
	}
}
