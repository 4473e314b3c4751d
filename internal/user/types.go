package user

import "emotion-assistant/internal/model"

// --- UseCase Inputs ---

type SignupInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// --- UseCase Outputs ---

// AuthOutput is returned by signup and login; Token goes into the auth cookie.
type AuthOutput struct {
	User  model.User
	Token string
}
