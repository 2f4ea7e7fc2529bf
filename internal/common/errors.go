// Package common defines shared constants and sentinel errors used across
// Drishya components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Registry errors.
	ErrDuplicateEmail  = errors.New("account with this email already exists")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrWeakPassword    = errors.New("password must be at least 6 characters long")
	ErrUserNotFound    = errors.New("no account found with this email")
	ErrMissingPassword = errors.New("password is required")

	// Catalog / repository errors.
	ErrNotFound = errors.New("not found")

	// Wizard errors (surfaced as disabled navigation, never fatal).
	ErrValidationFailed = errors.New("step is not complete")

	// Submission errors.
	ErrPlanRequired   = errors.New("plan is required")
	ErrAvatarRequired = errors.New("avatar is required")

	// Dispatcher errors.
	ErrTransportUnavailable = errors.New("notification service temporarily unavailable")

	// Persistence errors.
	ErrUnknownSchemaVersion = errors.New("unknown schema version")
)
