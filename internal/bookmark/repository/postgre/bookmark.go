package postgre

import (
	"context"
	"database/sql"

	repo "emotion-assistant/internal/bookmark/repository"
	"emotion-assistant/internal/model"
)

func (r *implRepository) CreateBookmark(ctx context.Context, opt repo.CreateBookmarkOptions) (model.Bookmark, error) {
	const query = `
		INSERT INTO bookmarks (user_id, name, url)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, name, url, created_at`

	var b model.Bookmark
	err := r.db.QueryRowContext(ctx, query, opt.UserID, opt.Name, opt.URL).Scan(
		&b.ID, &b.UserID, &b.Name, &b.URL, &b.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateBookmark"), err)
		return model.Bookmark{}, repo.ErrFailedToInsert
	}
	return b, nil
}

func (r *implRepository) ListBookmarks(ctx context.Context, userID int64) ([]model.Bookmark, error) {
	const query = `
		SELECT id, user_id, name, url, created_at FROM bookmarks
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBookmarks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []model.Bookmark
	for rows.Next() {
		var b model.Bookmark
		if err := rows.Scan(&b.ID, &b.UserID, &b.Name, &b.URL, &b.CreatedAt); err != nil {
			return nil, repo.ErrFailedToList
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *implRepository) UpdateBookmark(ctx context.Context, opt repo.UpdateBookmarkOptions) (model.Bookmark, error) {
	const query = `
		UPDATE bookmarks
		SET name = $1, url = COALESCE(NULLIF($2, ''), url)
		WHERE id = $3 AND user_id = $4
		RETURNING id, user_id, name, url, created_at`

	var b model.Bookmark
	err := r.db.QueryRowContext(ctx, query, opt.Name, opt.URL, opt.ID, opt.UserID).Scan(
		&b.ID, &b.UserID, &b.Name, &b.URL, &b.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Bookmark{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateBookmark"), err)
		return model.Bookmark{}, repo.ErrFailedToUpdate
	}
	return b, nil
}

func (r *implRepository) DeleteBookmark(ctx context.Context, userID, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookmarks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteBookmark"), err)
		return false, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, repo.ErrFailedToDelete
	}
	return n > 0, nil
}
