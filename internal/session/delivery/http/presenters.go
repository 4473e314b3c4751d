package http

import (
	"time"

	"emotion-assistant/internal/model"
	"emotion-assistant/internal/session"
)

// --- Request DTOs ---

type createReq struct {
	Title string `json:"title" binding:"max=255"`
}

func (r createReq) toInput() session.CreateInput {
	return session.CreateInput{Title: r.Title}
}

// --- Response DTOs ---

type sessionResp struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	CreatedAt   time.Time  `json:"created_at"`
	LastMessage string     `json:"last_message,omitempty"`
	LastDate    *time.Time `json:"last_date,omitempty"`
}

func newSessionResp(s model.ChatSession) sessionResp {
	return sessionResp{
		ID:          s.ID,
		Title:       s.Title,
		CreatedAt:   s.CreatedAt,
		LastMessage: s.LastMessage,
		LastDate:    s.LastDate,
	}
}

func newSessionListResp(sessions []model.ChatSession) []sessionResp {
	out := make([]sessionResp, len(sessions))
	for i, s := range sessions {
		out[i] = newSessionResp(s)
	}
	return out
}

type logResp struct {
	ID        int64     `json:"id"`
	Role      string    `json:"role"`
	Message   string    `json:"message"`
	URL       string    `json:"url,omitempty"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func newLogListResp(logs []model.ChatLog) []logResp {
	out := make([]logResp, len(logs))
	for i, l := range logs {
		out[i] = logResp{
			ID:        l.ID,
			Role:      string(l.Role),
			Message:   l.Message,
			URL:       l.URL,
			Name:      l.Name,
			CreatedAt: l.CreatedAt,
		}
	}
	return out
}
