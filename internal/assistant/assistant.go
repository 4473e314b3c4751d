// Package assistant builds the classification pipeline and its collaborators
// from configuration. Both the API server and the CLI start from Build.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"emotion-assistant/config"
	"emotion-assistant/internal/appcontrol"
	"emotion-assistant/internal/chatbot"
	"emotion-assistant/internal/classifier"
	"emotion-assistant/internal/dispatcher"
	"emotion-assistant/internal/model"
	"emotion-assistant/internal/recommend"
	"emotion-assistant/internal/router"
	"emotion-assistant/pkg/llmprovider"
	"emotion-assistant/pkg/log"
	"emotion-assistant/pkg/places"
	"emotion-assistant/pkg/timezone"
	"emotion-assistant/pkg/websearch"
)

// Assistant holds the wired pipeline.
type Assistant struct {
	LLM        *llmprovider.Manager
	Classifier *classifier.TaskClassifier
	Router     *router.IntegratedRouter
	Resolver   recommend.Resolver
	// Finder is nil when no Places API key is configured.
	Finder places.Finder

	Location    *time.Location
	transcripts *classifier.TranscriptStore
	histories   *chatbot.HistoryStore
}

// Build creates every collaborator. Missing Google API keys degrade the
// matching feature instead of failing.
func Build(ctx context.Context, cfg *config.Config, l log.Logger) (*Assistant, error) {
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("assistant.Build: %w", err)
	}
	llm := llmprovider.NewManager(providers, llmprovider.ManagerConfig(&cfg.LLM), l)
	l.Infof(ctx, "assistant.Build: %d LLM provider(s) ready", len(providers))

	loc := timezone.Load(cfg.Assistant.Timezone)
	persona := chatbot.Persona{
		Username:      cfg.Assistant.Username,
		AssistantName: cfg.Assistant.AssistantName,
	}

	transcripts := classifier.NewTranscriptStore(cfg.Assistant.MaxSessions, cfg.Assistant.SessionTTL, cfg.Assistant.TranscriptWindow)
	histories := chatbot.NewHistoryStore(cfg.Assistant.MaxSessions, cfg.Assistant.SessionTTL, cfg.Assistant.ChatHistorySize)

	var searcher websearch.Searcher = websearch.Disabled{}
	if ws, err := websearch.New(ctx, websearch.Config{APIKey: cfg.Search.APIKey, EngineID: cfg.Search.EngineID}); err != nil {
		if !errors.Is(err, websearch.ErrMissingCredentials) {
			return nil, fmt.Errorf("assistant.Build: %w", err)
		}
		l.Warnf(ctx, "assistant.Build: web search disabled: %v", err)
	} else {
		searcher = ws
	}

	var finder places.Finder
	if pc, err := places.New(ctx, cfg.Places.APIKey); err != nil {
		if !errors.Is(err, places.ErrMissingAPIKey) {
			return nil, fmt.Errorf("assistant.Build: %w", err)
		}
		l.Warnf(ctx, "assistant.Build: restaurant lookup disabled: %v", err)
	} else {
		finder = pc
	}

	chat := chatbot.New(llm, histories, persona, loc, l)
	search := chatbot.NewSearchEngine(llm, searcher, cfg.Search.NumResults, histories, persona, loc, l)
	apps := appcontrol.New(cfg.AppControl.Enabled, l)

	cls := classifier.New(classifier.NewLLMBackend(llm), transcripts, cfg.Assistant.ClassifierMaxAttempts, l)
	disp := dispatcher.New(chat, search, apps, l)

	return &Assistant{
		LLM:         llm,
		Classifier:  cls,
		Router:      router.New(cls, disp, search, l),
		Resolver:    recommend.New(recommend.NewLLMBackend(llm), loc, cfg.Recommend.RecentFoodWindow, l),
		Finder:      finder,
		Location:    loc,
		transcripts: transcripts,
		histories:   histories,
	}, nil
}

// Forget drops the in-memory classifier transcript and chat history of a
// session. It satisfies session.Forgetter.
func (a *Assistant) Forget(sessionID string) {
	a.transcripts.Forget(sessionID)
	a.histories.Forget(sessionID)
}

func (a *Assistant) HasHistory(sessionID string) bool {
	return a.histories.Has(sessionID)
}

// RestoreHistory seeds the chat history of a session that has none in
// memory. A live history is never overwritten.
func (a *Assistant) RestoreHistory(sessionID string, msgs []model.ChatMessage) {
	a.histories.Seed(sessionID, msgs)
}
