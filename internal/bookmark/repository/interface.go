package repository

import (
	"context"

	"emotion-assistant/internal/model"
)

type Repository interface {
	BookmarkRepository
}

// BookmarkRepository scopes every call by user id.
type BookmarkRepository interface {
	CreateBookmark(ctx context.Context, opt CreateBookmarkOptions) (model.Bookmark, error)
	ListBookmarks(ctx context.Context, userID int64) ([]model.Bookmark, error)
	// UpdateBookmark returns a zero Bookmark when no owned row matched.
	UpdateBookmark(ctx context.Context, opt UpdateBookmarkOptions) (model.Bookmark, error)
	// DeleteBookmark reports whether an owned row was removed.
	DeleteBookmark(ctx context.Context, userID, id int64) (bool, error)
}
