package repository

import "emotion-assistant/internal/model"

type CreateSessionOptions struct {
	ID     string
	UserID int64
	Title  string
}

// GetOneSessionOptions filters are ANDed; empty fields are ignored.
type GetOneSessionOptions struct {
	ID     string
	UserID int64
}

type ListSessionsOptions struct {
	UserID int64
}

type CreateLogOptions struct {
	SessionID string
	UserID    int64
	Role      model.Speaker
	Message   string
	URL       string
	Name      string
	Food      string
}

// ListLogsOptions returns logs oldest first. Limit > 0 keeps only the newest Limit lines.
type ListLogsOptions struct {
	SessionID string
	Limit     int
}

type ListRecentFoodsOptions struct {
	UserID int64
	Limit  int
}
