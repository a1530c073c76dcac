package api

import "errors"

var (
	// ErrUnavailable means the server could not be reached or answered
	// with a server-side failure. The outcome of the attempted operation
	// is unknown and callers must treat it as failed.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the server rejected the credentials or no
	// longer recognizes the account.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrDuplicate means an account with the same email or username
	// already exists.
	ErrDuplicate = errors.New("identity already registered")

	// ErrBadRequest means the server rejected the request payload.
	ErrBadRequest = errors.New("invalid request")
)
