package handlers

import (
	"errors"
	"net/http"

	"github.com/draperhq/storefront-api/internal/domain/apperr"
)

// statusFor maps the service error taxonomy onto HTTP statuses at the
// request boundary. Unknown errors stay generic so internals never leak.
func statusFor(err error) int {
	switch {
	case apperr.IsInsufficientStock(err):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperr.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// messageFor returns the caller-facing message for err: the error text for
// taxonomy errors, a generic line for anything internal.
func messageFor(err error) string {
	if statusFor(err) == http.StatusInternalServerError {
		return "internal error"
	}
	return err.Error()
}
