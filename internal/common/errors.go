// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Page-level errors.
	ErrEmptyBundle = errors.New("no application data returned")

	// Gateway errors.
	ErrGatewayTransport = errors.New("gateway request failed")
	ErrGatewayStatus    = errors.New("gateway returned failure status")

	// Decision errors.
	ErrAlreadyDecided = errors.New("decision already recorded")
	ErrEmptyRemarks   = errors.New("remarks must not be empty")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// UserMessage extracts the message to show the user for err. Errors that are
// not a UserError collapse to the supplied fallback so raw transport detail
// never reaches the screen.
func UserMessage(err error, fallback string) string {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage
	}
	return fallback
}
