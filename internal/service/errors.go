package service

import "errors"

// Domain failure taxonomy. Handlers translate these to HTTP status codes with
// errors.Is; services wrap them with context via fmt.Errorf("...: %w", ...).
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)
