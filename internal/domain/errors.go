package domain

import "errors"

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrEmailTaken      = errors.New("email already registered")
	// ErrInvalidCredentials is returned for both unknown email and wrong password.
	// Callers must not be able to tell which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken covers expired, malformed, and forged tokens alike.
	ErrInvalidToken = errors.New("invalid token")
)
