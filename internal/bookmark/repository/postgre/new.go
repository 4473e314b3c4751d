package postgre

import (
	"database/sql"
	"fmt"

	"emotion-assistant/internal/bookmark/repository"
	"emotion-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("bookmark/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("bookmark/repository/postgre.%s", method)
}
