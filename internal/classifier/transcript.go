package classifier

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"emotion-assistant/internal/model"
)

// Turn is one completed classification: the request and the directive line it produced.
type Turn struct {
	Request    string
	Directives string
}

// Transcript is the per-session classification context. It is safe for
// concurrent use and only ever holds completed turns.
type Transcript struct {
	mu     sync.Mutex
	turns  []Turn
	window int
}

func newTranscript(window int) *Transcript {
	return &Transcript{window: window}
}

// Append records a turn, keeping at most window turns.
func (t *Transcript) Append(turn Turn) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.turns = append(t.turns, turn)
	if t.window > 0 && len(t.turns) > t.window {
		t.turns = append([]Turn(nil), t.turns[len(t.turns)-t.window:]...)
	}
}

// History renders the turns as alternating user/assistant messages.
func (t *Transcript) History() []model.ChatMessage {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]model.ChatMessage, 0, len(t.turns)*2)
	for _, turn := range t.turns {
		out = append(out,
			model.ChatMessage{Role: model.RoleUser, Content: turn.Request},
			model.ChatMessage{Role: model.RoleAssistant, Content: turn.Directives},
		)
	}
	return out
}

func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.turns)
}

// TranscriptStore owns one Transcript per chat session. Idle sessions expire.
type TranscriptStore struct {
	mu     sync.Mutex
	cache  *expirable.LRU[string, *Transcript]
	window int
}

func NewTranscriptStore(maxSessions int, ttl time.Duration, window int) *TranscriptStore {
	return &TranscriptStore{
		cache:  expirable.NewLRU[string, *Transcript](maxSessions, nil, ttl),
		window: window,
	}
}

// Get returns the session's transcript, creating it on first use.
func (s *TranscriptStore) Get(sessionID string) *Transcript {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.cache.Get(sessionID); ok {
		return t
	}
	t := newTranscript(s.window)
	s.cache.Add(sessionID, t)
	return t
}

// Forget drops a session's transcript, e.g. when the session is deleted.
func (s *TranscriptStore) Forget(sessionID string) {
	s.cache.Remove(sessionID)
}
