package http

import (
	"emotion-assistant/internal/model"
	"emotion-assistant/internal/user"
)

// --- Request DTOs ---

type signupReq struct {
	Name     string `json:"name"     binding:"required,max=100"`
	Email    string `json:"email"    binding:"required,max=255"`
	Password string `json:"password" binding:"required,min=4,max=72"`
}

func (r signupReq) toInput() user.SignupInput {
	return user.SignupInput{Name: r.Name, Email: r.Email, Password: r.Password}
}

type loginReq struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{Email: r.Email, Password: r.Password}
}

// --- Response DTOs ---

type userResp struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func newUserResp(u model.User) userResp {
	return userResp{ID: u.ID, Name: u.Name, Email: u.Email}
}

type statusResp struct {
	LoggedIn bool `json:"logged_in"`
	userResp
}

func newStatusResp(u model.User) statusResp {
	return statusResp{LoggedIn: true, userResp: newUserResp(u)}
}
