package session

import "errors"

var (
	ErrForbidden    = errors.New("session not owned by caller")
	ErrEmptyMessage = errors.New("empty message")
)
