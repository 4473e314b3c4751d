package postgre

import (
	"database/sql"
	"fmt"

	"emotion-assistant/internal/session/repository"
	"emotion-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed Repository for chat sessions and logs.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("session/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("session/repository/postgre.%s", method)
}
