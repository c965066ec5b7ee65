package services

import "errors"

// Domain errors raised by the service layer. Controllers map each one to a
// single client-visible status; anything else is treated as internal.
var (
	ErrConflict     = errors.New("email already registered")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("not authorized")
	ErrInvalidToken = errors.New("invalid or expired token")
)
