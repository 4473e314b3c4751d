package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"emotion-assistant/internal/model"
	repo "emotion-assistant/internal/session/repository"
)

func (r *implRepository) CreateSession(ctx context.Context, opt repo.CreateSessionOptions) (model.ChatSession, error) {
	const query = `
		INSERT INTO chat_sessions (id, user_id, title)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, title, created_at`

	var s model.ChatSession
	err := r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID, opt.Title).Scan(
		&s.ID, &s.UserID, &s.Title, &s.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateSession"), err)
		return model.ChatSession{}, repo.ErrFailedToInsert
	}
	return s, nil
}

func (r *implRepository) GetOneSession(ctx context.Context, opt repo.GetOneSessionOptions) (model.ChatSession, error) {
	mods, args := r.buildGetOneSessionQuery(opt)
	query := fmt.Sprintf(`SELECT id, user_id, title, created_at FROM chat_sessions WHERE %s LIMIT 1`, mods)

	var s model.ChatSession
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.UserID, &s.Title, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return model.ChatSession{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneSession"), err)
		return model.ChatSession{}, repo.ErrFailedToGet
	}
	return s, nil
}

// ListSessions returns the user's sessions newest first, each with its last log line.
func (r *implRepository) ListSessions(ctx context.Context, opt repo.ListSessionsOptions) ([]model.ChatSession, error) {
	const query = `
		SELECT s.id, s.user_id, s.title, s.created_at, l.message, l.created_at
		FROM chat_sessions s
		LEFT JOIN LATERAL (
			SELECT message, created_at FROM chat_logs
			WHERE session_id = s.id
			ORDER BY created_at DESC, id DESC
			LIMIT 1
		) l ON TRUE
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSessions"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var sessions []model.ChatSession
	for rows.Next() {
		var (
			s        model.ChatSession
			lastMsg  sql.NullString
			lastDate sql.NullTime
		)
		if err := rows.Scan(&s.ID, &s.UserID, &s.Title, &s.CreatedAt, &lastMsg, &lastDate); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListSessions"), err)
			return nil, repo.ErrFailedToList
		}
		s.LastMessage = lastMsg.String
		if lastDate.Valid {
			t := lastDate.Time
			s.LastDate = &t
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListSessions"), err)
		return nil, repo.ErrFailedToList
	}
	return sessions, nil
}

// DeleteSession removes the session; its logs cascade.
func (r *implRepository) DeleteSession(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM chat_sessions WHERE id = $1`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteSession"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) buildGetOneSessionQuery(opt repo.GetOneSessionOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		args = append(args, opt.ID)
		conditions = append(conditions, fmt.Sprintf("id = $%d", len(args)))
	}
	if opt.UserID != 0 {
		args = append(args, opt.UserID)
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}
