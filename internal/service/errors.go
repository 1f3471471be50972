package service

import "errors"

// Sentinel errors shared by every service. Handlers map them to HTTP
// statuses with errors.Is; anything else is an internal error.
var (
	ErrValidation         = errors.New("missing or malformed request data")
	ErrConflict           = errors.New("email or username already in use")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("no read or write access to endpoint")
	ErrNotFound           = errors.New("not found")
)
