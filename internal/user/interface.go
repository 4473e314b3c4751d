package user

import (
	"context"

	"emotion-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Signup(ctx context.Context, input SignupInput) (AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (AuthOutput, error)
	Status(ctx context.Context, sc model.Scope) (model.User, error)
	DeleteAccount(ctx context.Context, sc model.Scope) error
}
