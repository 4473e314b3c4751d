package bookmark

import (
	"context"

	"emotion-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Add(ctx context.Context, sc model.Scope, input AddInput) (model.Bookmark, error)
	List(ctx context.Context, sc model.Scope) ([]model.Bookmark, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Bookmark, error)
	Delete(ctx context.Context, sc model.Scope, id int64) error
}
