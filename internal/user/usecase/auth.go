package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"emotion-assistant/internal/model"
	"emotion-assistant/internal/user"
	repo "emotion-assistant/internal/user/repository"
	"emotion-assistant/pkg/scope"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Signup registers a user and issues a token for them.
func (uc *implUseCase) Signup(ctx context.Context, input user.SignupInput) (user.AuthOutput, error) {
	email := strings.TrimSpace(input.Email)
	if !emailPattern.MatchString(email) {
		return user.AuthOutput{}, user.ErrInvalidEmail
	}

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Signup GetOneUser: %v", err)
		return user.AuthOutput{}, err
	}
	if existing.ID != 0 {
		return user.AuthOutput{}, user.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), uc.hashCost)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Signup GenerateFromPassword: %v", err)
		return user.AuthOutput{}, err
	}

	u, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Name:           strings.TrimSpace(input.Name),
		Email:          email,
		HashedPassword: string(hashed),
	})
	if errors.Is(err, repo.ErrDuplicateEmail) {
		return user.AuthOutput{}, user.ErrEmailTaken
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Signup CreateUser: %v", err)
		return user.AuthOutput{}, err
	}

	return uc.issue(ctx, u)
}

// Login checks the credentials and issues a token.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.AuthOutput, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: strings.TrimSpace(input.Email)})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOneUser: %v", err)
		return user.AuthOutput{}, err
	}
	if u.ID == 0 {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(input.Password)) != nil {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	return uc.issue(ctx, u)
}

func (uc *implUseCase) issue(ctx context.Context, u model.User) (user.AuthOutput, error) {
	token, err := uc.jwtManager.CreateToken(scope.Payload{UserID: u.ID, Email: u.Email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.issue CreateToken: %v", err)
		return user.AuthOutput{}, err
	}
	return user.AuthOutput{User: u, Token: token}, nil
}
