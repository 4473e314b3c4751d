package http

import (
	"errors"
	"net/http"

	"emotion-assistant/internal/conversation"
	"emotion-assistant/internal/session"
	pkgErrors "emotion-assistant/pkg/errors"
)

var errEmptyMessage = pkgErrors.NewHTTPError(http.StatusBadRequest, "메시지를 입력해 주세요.")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, conversation.ErrEmptyMessage), errors.Is(err, session.ErrEmptyMessage):
		return errEmptyMessage
	case errors.Is(err, session.ErrForbidden):
		return pkgErrors.ErrForbidden
	default:
		return err
	}
}
