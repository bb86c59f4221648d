package relay_errors

import "errors"

// Common errors
var (
	ErrUnauthenticated      = errors.New("you are not authenticated")
	ErrAuthenticationFailed = errors.New("token is invalid")
	ErrInvalidCredential    = errors.New("invalid password")
	ErrNotFound             = errors.New("not found")
	ErrAlreadyExists        = errors.New("already exists")
	ErrValidation           = errors.New("invalid input")
)
