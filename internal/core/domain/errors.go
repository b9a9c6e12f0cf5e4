package domain

import (
	"errors"
	"fmt"
)

// Authentication / authorization failures. Each one is terminal for the
// request; the API layer maps them to HTTP status codes in one place.
var (
	ErrMissingToken     = errors.New("no token provided")
	ErrMalformedToken   = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrExpiredToken     = errors.New("token expired")
	ErrInsufficientRole = errors.New("insufficient role")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the login response never reveals which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrStoreUnavailable means a live role or ban lookup failed. The gate
	// fails closed on it, never falling back to the token's stale role.
	ErrStoreUnavailable = errors.New("store unavailable")

	ErrTooManyAttempts = errors.New("too many login attempts")
)

// Resource errors.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailExists      = errors.New("email already exists")
	ErrCountryNotFound  = errors.New("country not found")
	ErrVacationNotFound = errors.New("vacation not found")
	ErrBanNotFound      = errors.New("ban not found")
	ErrInvalidDuration  = errors.New("ban duration must be a positive number of days")
	ErrValidation       = errors.New("validation failed")
)

// BannedError refuses a login whose credentials were otherwise correct.
// Unlike the generic credential failure it carries the ban details, because
// a banned user is told why.
type BannedError struct {
	Ban Ban
}

func (e *BannedError) Error() string {
	return fmt.Sprintf("account banned until %s", e.Ban.UntilAt.Format("2006-01-02 15:04"))
}
