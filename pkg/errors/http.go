// Package errors carries HTTP-aware errors from delivery mappers to the response writer.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is an error with the status code and message sent to the client.
type HTTPError struct {
	Code    int
	Message string
}

func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Code, e.Message)
}

// AsHTTPError unwraps err into an *HTTPError.
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "잘못된 요청입니다.")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "인증이 필요합니다.")
	ErrForbidden           = NewHTTPError(http.StatusForbidden, "권한이 없습니다.")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "찾을 수 없습니다.")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "요청이 너무 많습니다. 잠시 후 다시 시도해 주세요.")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "서버 오류가 발생했습니다.")
)
