package usecase

import (
	"context"
	"strings"

	"emotion-assistant/internal/model"
	"emotion-assistant/internal/session"
	repo "emotion-assistant/internal/session/repository"
)

// Logs returns the session's lines oldest first.
func (uc *implUseCase) Logs(ctx context.Context, sc model.Scope, id string) ([]model.ChatLog, error) {
	if _, err := uc.Detail(ctx, sc, id); err != nil {
		return nil, err
	}
	logs, err := uc.repo.ListLogs(ctx, repo.ListLogsOptions{SessionID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Logs ListLogs: %v", err)
		return nil, err
	}
	return logs, nil
}

// SaveLog appends a line. Ownership of input.SessionID is the caller's concern.
func (uc *implUseCase) SaveLog(ctx context.Context, sc model.Scope, input session.SaveLogInput) (model.ChatLog, error) {
	if strings.TrimSpace(input.Message) == "" {
		return model.ChatLog{}, session.ErrEmptyMessage
	}
	l, err := uc.repo.CreateLog(ctx, repo.CreateLogOptions{
		SessionID: input.SessionID,
		UserID:    sc.UserID,
		Role:      input.Role,
		Message:   input.Message,
		URL:       input.URL,
		Name:      input.Name,
		Food:      input.Food,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SaveLog CreateLog: %v", err)
		return model.ChatLog{}, err
	}
	return l, nil
}

func (uc *implUseCase) RecentFoods(ctx context.Context, sc model.Scope, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}
	foods, err := uc.repo.ListRecentFoods(ctx, repo.ListRecentFoodsOptions{UserID: sc.UserID, Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "uc.RecentFoods ListRecentFoods: %v", err)
		return nil, err
	}
	return foods, nil
}
