package repository

type CreateBookmarkOptions struct {
	UserID int64
	Name   string
	URL    string
}

type UpdateBookmarkOptions struct {
	ID     int64
	UserID int64
	Name   string
	URL    string
}
