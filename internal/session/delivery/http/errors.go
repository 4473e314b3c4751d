package http

import (
	"errors"

	"emotion-assistant/internal/session"
	pkgErrors "emotion-assistant/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, session.ErrForbidden):
		return pkgErrors.ErrForbidden
	default:
		return err
	}
}
