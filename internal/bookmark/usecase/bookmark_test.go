package usecase

import (
	"context"
	"errors"
	"testing"

	"emotion-assistant/internal/bookmark"
	repo "emotion-assistant/internal/bookmark/repository"
	"emotion-assistant/internal/model"
	"emotion-assistant/pkg/log"
)

// ── Mocks ──────────────────────────────────────────────────────────────

type mockRepo struct {
	rows []model.Bookmark
}

func (m *mockRepo) CreateBookmark(ctx context.Context, opt repo.CreateBookmarkOptions) (model.Bookmark, error) {
	b := model.Bookmark{ID: int64(len(m.rows) + 1), UserID: opt.UserID, Name: opt.Name, URL: opt.URL}
	m.rows = append(m.rows, b)
	return b, nil
}

func (m *mockRepo) ListBookmarks(ctx context.Context, userID int64) ([]model.Bookmark, error) {
	var out []model.Bookmark
	for _, b := range m.rows {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockRepo) UpdateBookmark(ctx context.Context, opt repo.UpdateBookmarkOptions) (model.Bookmark, error) {
	for i, b := range m.rows {
		if b.ID == opt.ID && b.UserID == opt.UserID {
			m.rows[i].Name = opt.Name
			if opt.URL != "" {
				m.rows[i].URL = opt.URL
			}
			return m.rows[i], nil
		}
	}
	return model.Bookmark{}, nil
}

func (m *mockRepo) DeleteBookmark(ctx context.Context, userID, id int64) (bool, error) {
	for i, b := range m.rows {
		if b.ID == id && b.UserID == userID {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ── Tests ──────────────────────────────────────────────────────────────

var (
	owner    = model.Scope{UserID: 1}
	stranger = model.Scope{UserID: 2}
)

func TestAdd(t *testing.T) {
	uc := New(&mockRepo{}, log.NewNop())

	b, err := uc.Add(context.Background(), owner, bookmark.AddInput{Name: " 명동 칼국수 ", URL: "https://maps.google.com/?q=1"})
	if err != nil {
		t.Fatal(err)
	}
	if b.Name != "명동 칼국수" || b.UserID != 1 {
		t.Errorf("unexpected bookmark %+v", b)
	}

	if _, err := uc.Add(context.Background(), owner, bookmark.AddInput{Name: "x", URL: "javascript:alert(1)"}); !errors.Is(err, bookmark.ErrInvalidURL) {
		t.Errorf("expected ErrInvalidURL, got %v", err)
	}
}

func TestUpdate_ScopedToOwner(t *testing.T) {
	r := &mockRepo{rows: []model.Bookmark{{ID: 1, UserID: 1, Name: "old", URL: "https://a.co"}}}
	uc := New(r, log.NewNop())

	if _, err := uc.Update(context.Background(), stranger, bookmark.UpdateInput{ID: 1, Name: "hijack"}); !errors.Is(err, bookmark.ErrBookmarkNotFound) {
		t.Fatalf("expected ErrBookmarkNotFound, got %v", err)
	}

	b, err := uc.Update(context.Background(), owner, bookmark.UpdateInput{ID: 1, Name: "new"})
	if err != nil {
		t.Fatal(err)
	}
	if b.Name != "new" || b.URL != "https://a.co" {
		t.Errorf("unexpected bookmark %+v", b)
	}
}

func TestDelete_ScopedToOwner(t *testing.T) {
	r := &mockRepo{rows: []model.Bookmark{{ID: 1, UserID: 1}}}
	uc := New(r, log.NewNop())

	if err := uc.Delete(context.Background(), stranger, 1); !errors.Is(err, bookmark.ErrBookmarkNotFound) {
		t.Fatalf("expected ErrBookmarkNotFound, got %v", err)
	}
	if err := uc.Delete(context.Background(), owner, 1); err != nil {
		t.Fatal(err)
	}
	if len(r.rows) != 0 {
		t.Error("row should be gone")
	}
}
