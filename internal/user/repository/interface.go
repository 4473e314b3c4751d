package repository

import (
	"context"

	"emotion-assistant/internal/model"
)

// Repository is the composed interface for the user domain data store.
type Repository interface {
	UserRepository
}

type UserRepository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	// GetOneUser returns a zero User (ID == 0) when nothing matches.
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (model.User, error)
	// DeleteUser removes the user; sessions, logs and bookmarks cascade.
	DeleteUser(ctx context.Context, id int64) error
}
