package http

import (
	"errors"
	"net/http"

	"nextact/internal/nextact"
	pkgErrors "nextact/pkg/errors"
)

var (
	errInvalidText = &pkgErrors.HTTPError{
		StatusCode: http.StatusBadRequest,
		Code:       110001,
		Message:    "text must be a non-empty string",
	}
	errModelUnavailable = &pkgErrors.HTTPError{
		StatusCode: http.StatusInternalServerError,
		Code:       110002,
		Message:    "classification model is not loaded",
	}
	errEmptyMessage = &pkgErrors.HTTPError{
		StatusCode: http.StatusBadRequest,
		Code:       110003,
		Message:    "message is required",
	}
	errAssistantUnavailable = &pkgErrors.HTTPError{
		StatusCode: http.StatusInternalServerError,
		Code:       110004,
		Message:    "task assistant is not configured",
	}
	errAssistantFailed = &pkgErrors.HTTPError{
		StatusCode: http.StatusBadGateway,
		Code:       110005,
		Message:    "task assistant request failed",
	}
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become a generic 500 so internals never leak to clients.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, nextact.ErrInvalidInput):
		return errInvalidText
	case errors.Is(err, nextact.ErrModelUnavailable):
		return errModelUnavailable
	case errors.Is(err, nextact.ErrEmptyMessage):
		return errEmptyMessage
	case errors.Is(err, nextact.ErrAssistantUnavailable):
		return errAssistantUnavailable
	case errors.Is(err, nextact.ErrAssistantFailed):
		return errAssistantFailed
	default:
		return pkgErrors.ErrInternalServerError
	}
}
