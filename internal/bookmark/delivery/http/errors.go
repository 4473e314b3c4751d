package http

import (
	"errors"
	"net/http"

	"emotion-assistant/internal/bookmark"
	pkgErrors "emotion-assistant/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, bookmark.ErrBookmarkNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "즐겨찾기를 찾을 수 없습니다.")
	case errors.Is(err, bookmark.ErrInvalidURL):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "올바르지 않은 URL입니다.")
	default:
		return err
	}
}
