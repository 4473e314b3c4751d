package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"emotion-assistant/internal/model"
	repo "emotion-assistant/internal/user/repository"
)

const uniqueViolation = "23505"

func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	const query = `
		INSERT INTO users (name, email, hashed_password)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, hashed_password, created_at`

	var u model.User
	err := r.db.QueryRowContext(ctx, query, opt.Name, opt.Email, opt.HashedPassword).Scan(
		&u.ID, &u.Name, &u.Email, &u.HashedPassword, &u.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return model.User{}, repo.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	var conditions []string
	var args []any
	if opt.ID != 0 {
		args = append(args, opt.ID)
		conditions = append(conditions, fmt.Sprintf("id = $%d", len(args)))
	}
	if opt.Email != "" {
		args = append(args, opt.Email)
		conditions = append(conditions, fmt.Sprintf("email = $%d", len(args)))
	}
	if len(conditions) == 0 {
		return model.User{}, nil
	}

	query := fmt.Sprintf(
		`SELECT id, name, email, hashed_password, created_at FROM users WHERE %s LIMIT 1`,
		strings.Join(conditions, " AND "),
	)

	var u model.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&u.ID, &u.Name, &u.Email, &u.HashedPassword, &u.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

func (r *implRepository) DeleteUser(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteUser"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
