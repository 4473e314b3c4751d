package usecase

import (
	"github.com/google/uuid"

	"emotion-assistant/internal/session"
	"emotion-assistant/internal/session/repository"
	"emotion-assistant/pkg/log"
)

type implUseCase struct {
	repo       repository.Repository
	forgetters []session.Forgetter
	newID      func() string
	l          log.Logger
}

var _ session.UseCase = (*implUseCase)(nil)

// New creates the session UseCase. forgetters are told about every deleted session.
func New(repo repository.Repository, l log.Logger, forgetters ...session.Forgetter) *implUseCase {
	return &implUseCase{
		repo:       repo,
		forgetters: forgetters,
		newID:      uuid.NewString,
		l:          l,
	}
}
