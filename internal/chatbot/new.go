package chatbot

import (
	"context"
	"time"

	"emotion-assistant/internal/dispatcher"
	"emotion-assistant/pkg/llmprovider"
	"emotion-assistant/pkg/log"
	"emotion-assistant/pkg/websearch"
)

// LLM is satisfied by *llmprovider.Manager.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Persona names the two sides of the conversation in the system prompts.
type Persona struct {
	Username      string
	AssistantName string
}

// Chatbot answers free-form questions in Korean.
type Chatbot struct {
	llm     LLM
	history *HistoryStore
	persona Persona
	loc     *time.Location
	now     func() time.Time
	l       log.Logger
}

var _ dispatcher.GeneralChat = (*Chatbot)(nil)

func New(llm LLM, history *HistoryStore, persona Persona, loc *time.Location, l log.Logger) *Chatbot {
	return &Chatbot{
		llm:     llm,
		history: history,
		persona: persona,
		loc:     loc,
		now:     time.Now,
		l:       l,
	}
}

// SearchEngine answers questions from live Google results.
type SearchEngine struct {
	llm      LLM
	searcher websearch.Searcher
	limit    int
	history  *HistoryStore
	persona  Persona
	loc      *time.Location
	now      func() time.Time
	l        log.Logger
}

var _ dispatcher.RealtimeSearch = (*SearchEngine)(nil)

// NewSearchEngine creates a SearchEngine. limit is the number of results
// fed to the model per query.
func NewSearchEngine(llm LLM, searcher websearch.Searcher, limit int, history *HistoryStore, persona Persona, loc *time.Location, l log.Logger) *SearchEngine {
	if limit <= 0 {
		limit = websearch.DefaultNumResults
	}
	return &SearchEngine{
		llm:      llm,
		searcher: searcher,
		limit:    limit,
		history:  history,
		persona:  persona,
		loc:      loc,
		now:      time.Now,
		l:        l,
	}
}
