package model

import (
	"time"

	"emotion-assistant/pkg/scope"
)

type User struct {
	ID             int64
	Name           string
	Email          string
	HashedPassword string
	CreatedAt      time.Time
}

// Scope is the authenticated caller attached to a request by the auth middleware.
type Scope struct {
	UserID int64
	Email  string
}

type Bookmark struct {
	ID        int64
	UserID    int64
	Name      string
	URL       string
	CreatedAt time.Time
}

// NewScope converts a verified token payload.
func NewScope(p scope.Payload) Scope {
	return Scope{UserID: p.UserID, Email: p.Email}
}
