package session

import "errors"

var (
	// ErrSessionNotFound indicates the session isn't in the index.
	ErrSessionNotFound = errors.New("session not found")
)
