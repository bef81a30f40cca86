// Package common provides shared utilities used across the application.
package common

import (
	"errors"
	"fmt"
)

// Application-wide sentinel errors.
var (
	// Capture-side errors.
	ErrPermissionDenied  = errors.New("microphone or speech recognition permission denied")
	ErrEngineUnavailable = errors.New("speech engine unavailable")
	ErrRecognitionFailed = errors.New("speech recognition failed")

	// Storage errors.
	ErrNotFound = errors.New("not found")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError carries a message meant to be shown directly to the user, with
// the underlying cause attached for logs.
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

// NewUserError wraps err with a user-facing message.
func NewUserError(userMessage string, err error) error {
	return &UserError{UserMessage: userMessage, Err: err}
}
