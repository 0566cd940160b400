package domain

import "errors"

// Sentinel errors checked at the HTTP boundary to pick status codes.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrActiveApplication  = errors.New("you already have an active application")
	ErrInvalidSession     = errors.New("invalid session")
)
