package bookmark

import "errors"

var (
	ErrBookmarkNotFound = errors.New("bookmark not found")
	ErrInvalidURL       = errors.New("invalid bookmark url")
)
