package postgre

import (
	"context"

	"emotion-assistant/internal/model"
	repo "emotion-assistant/internal/session/repository"
)

func (r *implRepository) CreateLog(ctx context.Context, opt repo.CreateLogOptions) (model.ChatLog, error) {
	const query = `
		INSERT INTO chat_logs (session_id, user_id, role, message, url, name, food)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, session_id, user_id, role, message, url, name, food, created_at`

	var l model.ChatLog
	err := r.db.QueryRowContext(ctx, query,
		opt.SessionID, opt.UserID, string(opt.Role), opt.Message, opt.URL, opt.Name, opt.Food,
	).Scan(&l.ID, &l.SessionID, &l.UserID, &l.Role, &l.Message, &l.URL, &l.Name, &l.Food, &l.CreatedAt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateLog"), err)
		return model.ChatLog{}, repo.ErrFailedToInsert
	}
	return l, nil
}

func (r *implRepository) ListLogs(ctx context.Context, opt repo.ListLogsOptions) ([]model.ChatLog, error) {
	query := `
		SELECT id, session_id, user_id, role, message, url, name, food, created_at
		FROM chat_logs
		WHERE session_id = $1
		ORDER BY created_at, id`
	args := []any{opt.SessionID}

	if opt.Limit > 0 {
		query = `
			SELECT * FROM (
				SELECT id, session_id, user_id, role, message, url, name, food, created_at
				FROM chat_logs
				WHERE session_id = $1
				ORDER BY created_at DESC, id DESC
				LIMIT $2
			) recent
			ORDER BY created_at, id`
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListLogs"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var logs []model.ChatLog
	for rows.Next() {
		var l model.ChatLog
		if err := rows.Scan(&l.ID, &l.SessionID, &l.UserID, &l.Role, &l.Message, &l.URL, &l.Name, &l.Food, &l.CreatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListLogs"), err)
			return nil, repo.ErrFailedToList
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return logs, nil
}

func (r *implRepository) ListRecentFoods(ctx context.Context, opt repo.ListRecentFoodsOptions) ([]string, error) {
	const query = `
		SELECT food FROM chat_logs
		WHERE user_id = $1 AND food <> ''
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, opt.UserID, opt.Limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRecentFoods"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var foods []string
	for rows.Next() {
		var food string
		if err := rows.Scan(&food); err != nil {
			return nil, repo.ErrFailedToList
		}
		foods = append(foods, food)
	}
	return foods, rows.Err()
}
