package usecase

import (
	"context"

	"emotion-assistant/internal/model"
	"emotion-assistant/internal/user"
	repo "emotion-assistant/internal/user/repository"
)

// Status returns the caller's account. A token whose user is gone is
// reported as ErrUserNotFound.
func (uc *implUseCase) Status(ctx context.Context, sc model.Scope) (model.User, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: sc.UserID, Email: sc.Email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Status GetOneUser: %v", err)
		return model.User{}, err
	}
	if u.ID == 0 {
		return model.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (uc *implUseCase) DeleteAccount(ctx context.Context, sc model.Scope) error {
	if _, err := uc.Status(ctx, sc); err != nil {
		return err
	}
	if err := uc.repo.DeleteUser(ctx, sc.UserID); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteAccount DeleteUser: %v", err)
		return err
	}
	return nil
}
