package session

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	// ErrMissingCredentials means no upstream model credential is configured.
	ErrMissingCredentials = errors.New("upstream credentials are not configured")
	ErrCreateFailed       = errors.New("failed to create session")
	ErrArchiveDisabled    = errors.New("transcript archive not enabled")
)
