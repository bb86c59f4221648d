package services

import (
	"errors"
	"net/http"

	relay_errors "relay-chat/pkg/errors"
)

// HTTPStatus maps the error taxonomy onto response codes.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, relay_errors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, relay_errors.ErrUnauthenticated),
		errors.Is(err, relay_errors.ErrAuthenticationFailed),
		errors.Is(err, relay_errors.ErrInvalidCredential):
		return http.StatusUnauthorized
	case errors.Is(err, relay_errors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, relay_errors.ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ErrorCode returns the machine-readable code paired with HTTPStatus.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, relay_errors.ErrValidation):
		return "VALIDATION_ERROR"
	case errors.Is(err, relay_errors.ErrUnauthenticated):
		return "UNAUTHENTICATED"
	case errors.Is(err, relay_errors.ErrAuthenticationFailed):
		return "AUTHENTICATION_FAILED"
	case errors.Is(err, relay_errors.ErrInvalidCredential):
		return "INVALID_CREDENTIAL"
	case errors.Is(err, relay_errors.ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, relay_errors.ErrAlreadyExists):
		return "ALREADY_EXISTS"
	default:
		return "INTERNAL_ERROR"
	}
}
