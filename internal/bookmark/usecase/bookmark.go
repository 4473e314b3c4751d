package usecase

import (
	"context"
	"net/url"
	"strings"

	"emotion-assistant/internal/bookmark"
	repo "emotion-assistant/internal/bookmark/repository"
	"emotion-assistant/internal/model"
)

func (uc *implUseCase) Add(ctx context.Context, sc model.Scope, input bookmark.AddInput) (model.Bookmark, error) {
	if !validURL(input.URL) {
		return model.Bookmark{}, bookmark.ErrInvalidURL
	}
	b, err := uc.repo.CreateBookmark(ctx, repo.CreateBookmarkOptions{
		UserID: sc.UserID,
		Name:   strings.TrimSpace(input.Name),
		URL:    input.URL,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Add CreateBookmark: %v", err)
		return model.Bookmark{}, err
	}
	return b, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]model.Bookmark, error) {
	out, err := uc.repo.ListBookmarks(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListBookmarks: %v", err)
		return nil, err
	}
	return out, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input bookmark.UpdateInput) (model.Bookmark, error) {
	if input.URL != "" && !validURL(input.URL) {
		return model.Bookmark{}, bookmark.ErrInvalidURL
	}
	b, err := uc.repo.UpdateBookmark(ctx, repo.UpdateBookmarkOptions{
		ID:     input.ID,
		UserID: sc.UserID,
		Name:   strings.TrimSpace(input.Name),
		URL:    input.URL,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateBookmark: %v", err)
		return model.Bookmark{}, err
	}
	if b.ID == 0 {
		return model.Bookmark{}, bookmark.ErrBookmarkNotFound
	}
	return b, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int64) error {
	ok, err := uc.repo.DeleteBookmark(ctx, sc.UserID, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteBookmark: %v", err)
		return err
	}
	if !ok {
		return bookmark.ErrBookmarkNotFound
	}
	return nil
}

func validURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
