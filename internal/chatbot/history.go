package chatbot

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"emotion-assistant/internal/model"
)

// History is a bounded, per-session conversation log shared by the general
// chat and realtime search collaborators.
type History struct {
	mu       sync.Mutex
	messages []model.ChatMessage
	limit    int
}

// Messages returns a copy of the stored messages, oldest first.
func (h *History) Messages() []model.ChatMessage {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]model.ChatMessage(nil), h.messages...)
}

// Append stores a completed exchange, dropping the oldest messages once the
// limit is exceeded.
func (h *History) Append(msgs ...model.ChatMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.messages = append(h.messages, msgs...)
	if h.limit > 0 && len(h.messages) > h.limit {
		h.messages = append([]model.ChatMessage(nil), h.messages[len(h.messages)-h.limit:]...)
	}
}

// HistoryStore keys History by session id. Idle sessions expire.
type HistoryStore struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, *History]
	limit int
}

func NewHistoryStore(maxSessions int, ttl time.Duration, limit int) *HistoryStore {
	return &HistoryStore{
		cache: expirable.NewLRU[string, *History](maxSessions, nil, ttl),
		limit: limit,
	}
}

func (s *HistoryStore) Get(sessionID string) *History {
	s.mu.Lock()
	defer s.mu.Unlock()

	if h, ok := s.cache.Get(sessionID); ok {
		return h
	}
	h := &History{limit: s.limit}
	s.cache.Add(sessionID, h)
	return h
}

// Has reports whether the session has a cached history, even an empty one.
func (s *HistoryStore) Has(sessionID string) bool {
	return s.cache.Contains(sessionID)
}

// Seed installs msgs as the history of a session that has none cached yet,
// e.g. logs restored from storage after a restart. It returns false and
// leaves the live history alone otherwise.
func (s *HistoryStore) Seed(sessionID string, msgs []model.ChatMessage) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cache.Contains(sessionID) {
		return false
	}
	h := &History{limit: s.limit}
	h.Append(msgs...)
	s.cache.Add(sessionID, h)
	return true
}

func (s *HistoryStore) Forget(sessionID string) {
	s.cache.Remove(sessionID)
}
