package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidToken covers absent, already-consumed and expired tokens
	// alike; a caller cannot distinguish the three.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrEmailMismatch means the token's bundle belongs to a different email.
	// The token is consumed before the check, so the attempt is not
	// retryable with the same token.
	ErrEmailMismatch = errors.New("email does not match verification token")
)

// ValidationError reports the first missing or malformed request field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid bundle data: missing %s", e.Field)
}

// UnknownProductError aborts invoice creation when a product name has no
// entry in the price catalog.
type UnknownProductError struct {
	Name string
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("unknown product: %s", e.Name)
}
