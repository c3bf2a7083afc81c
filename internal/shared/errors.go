// Package shared defines sentinel errors used across service and transport
// layers. Callers should use errors.Is to match these values.
package shared

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Request-level errors carrying a user-facing message.
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")

	// Auth errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
)

// Errorf builds an error whose message is exactly the formatted text while
// still matching the given sentinel via errors.Is. The %.0w verb wraps the
// sentinel without printing it.
func Errorf(sentinel error, format string, args ...any) error {
	return fmt.Errorf(format+"%.0w", append(args, sentinel)...)
}
