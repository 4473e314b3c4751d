package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToDelete = errors.New("failed to delete record")
	ErrDuplicateEmail = errors.New("duplicate email")
)
