// Package common defines shared constants and sentinel errors used across
// the PR Directory client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Remote-store errors.
	ErrUnavailable = errors.New("remote store unavailable")

	// Auth errors. A failed login never reveals which field was wrong.
	ErrUnauthorized = errors.New("invalid username or password")

	// Validation errors. Messages are shown to the user verbatim.
	ErrDuplicateUsername = errors.New("username is already taken by another account")
	ErrReservedAccount   = errors.New("the built-in administrator account cannot be deleted")

	// Session token errors.
	ErrInvalidToken = errors.New("invalid session token")
)
