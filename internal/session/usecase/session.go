package usecase

import (
	"context"
	"strings"

	"emotion-assistant/internal/model"
	"emotion-assistant/internal/session"
	repo "emotion-assistant/internal/session/repository"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input session.CreateInput) (model.ChatSession, error) {
	s, err := uc.repo.CreateSession(ctx, repo.CreateSessionOptions{
		ID:     uc.newID(),
		UserID: sc.UserID,
		Title:  TitleFrom(input.Title),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateSession: %v", err)
		return model.ChatSession{}, err
	}
	return s, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]model.ChatSession, error) {
	sessions, err := uc.repo.ListSessions(ctx, repo.ListSessionsOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListSessions: %v", err)
		return nil, err
	}
	return sessions, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.ChatSession, error) {
	s, err := uc.repo.GetOneSession(ctx, repo.GetOneSessionOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneSession: %v", err)
		return model.ChatSession{}, err
	}
	if s.ID == "" {
		return model.ChatSession{}, session.ErrForbidden
	}
	return s, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if _, err := uc.Detail(ctx, sc, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteSession(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteSession: %v", err)
		return err
	}
	for _, f := range uc.forgetters {
		f.Forget(id)
	}
	return nil
}

// TitleFrom trims text to the first MaxTitleRunes runes.
func TitleFrom(text string) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) > session.MaxTitleRunes {
		runes = runes[:session.MaxTitleRunes]
	}
	return string(runes)
}
