package usecase

import (
	"emotion-assistant/internal/bookmark"
	"emotion-assistant/internal/bookmark/repository"
	"emotion-assistant/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

var _ bookmark.UseCase = (*implUseCase)(nil)

func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{repo: repo, l: l}
}
