package session

import "errors"

// Domain-specific errors for the session package.
var (
	ErrBusy     = errors.New("session is awaiting a response")
	ErrClosed   = errors.New("session is closed")
	ErrNotFound = errors.New("session not found")
)
