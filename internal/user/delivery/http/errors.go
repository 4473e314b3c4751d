package http

import (
	"errors"
	"net/http"

	"emotion-assistant/internal/user"
	pkgErrors "emotion-assistant/pkg/errors"
)

// mapError translates use-case errors into HTTP errors. Unknown errors
// become 500s.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrInvalidEmail):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "이메일 형식이 올바르지 않습니다.")
	case errors.Is(err, user.ErrEmailTaken):
		return pkgErrors.NewHTTPError(http.StatusConflict, "이미 등록된 이메일입니다.")
	case errors.Is(err, user.ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "이메일 또는 비밀번호가 틀렸습니다.")
	case errors.Is(err, user.ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "User not found")
	default:
		return err
	}
}
