package services

import (
	"fmt"
)

// Error kinds returned by the service layer. Controllers map each kind
// to a status code exactly once, at the request boundary.

// ValidationError reports malformed or missing input (400).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// AuthError reports a failed credential check (401). Unknown email and
// wrong password produce identical messages on purpose.
type AuthError struct {
	Msg string
}

func (e *AuthError) Error() string { return e.Msg }

// PermissionError reports unauthenticated access to a protected
// resource (403).
type PermissionError struct {
	Msg string
}

func (e *PermissionError) Error() string { return e.Msg }

// ConflictError reports a duplicate registration (400).
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

// NotFoundError reports a missing resource. An existing resource owned
// by somebody else reports the same way (404).
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

// UpstreamError carries a third-party failure status through to the
// client verbatim.
type UpstreamError struct {
	Status int
	Msg    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error %d: %s", e.Status, e.Msg)
}
