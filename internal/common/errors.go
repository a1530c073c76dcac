// Package common defines shared constants and sentinel errors used across
// client and server layers of MentorAuth. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// ErrValidation marks malformed input caught before any storage or
	// network call. Field-level detail is carried by FieldError.
	ErrValidation = errors.New("validation error")

	// ErrDuplicateIdentity marks a registration conflict on email or
	// username.
	ErrDuplicateIdentity = errors.New("identity already exists")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so a caller cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionInvalid marks a refresh whose subject no longer exists.
	ErrSessionInvalid = errors.New("session invalid")

	// Token errors (invalid signature, malformed, or expired).
	ErrInvalidToken = errors.New("invalid token")
)

// FieldError is a validation failure attributed to a single input field,
// so callers can highlight the offending field. It matches ErrValidation
// under errors.Is.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

func (e *FieldError) Unwrap() error {
	return ErrValidation
}

// NewFieldError builds a FieldError for the given field and reason.
func NewFieldError(field, reason string) error {
	return &FieldError{Field: field, Reason: reason}
}
