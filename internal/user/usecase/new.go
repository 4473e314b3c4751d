package usecase

import (
	"golang.org/x/crypto/bcrypt"

	"emotion-assistant/internal/user"
	"emotion-assistant/internal/user/repository"
	"emotion-assistant/pkg/log"
	"emotion-assistant/pkg/scope"
)

type implUseCase struct {
	repo       repository.Repository
	jwtManager scope.Manager
	l          log.Logger
	hashCost   int
}

var _ user.UseCase = (*implUseCase)(nil)

// New creates the user UseCase.
func New(repo repository.Repository, jwtManager scope.Manager, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:       repo,
		jwtManager: jwtManager,
		l:          l,
		hashCost:   bcrypt.DefaultCost,
	}
}
