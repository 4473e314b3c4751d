package repository

type CreateUserOptions struct {
	Name           string
	Email          string
	HashedPassword string
}

// GetOneUserOptions filters are ANDed; empty fields are ignored.
type GetOneUserOptions struct {
	ID    int64
	Email string
}
