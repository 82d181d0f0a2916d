package authsession

import "errors"

// ErrInvalidConfig is returned when environment parsing fails.
var ErrInvalidConfig = errors.New("authsession: invalid configuration")

// Boundary validation errors for caller input.
var (
	ErrMissingBaseURL     = errors.New("authsession: missing base URL")
	ErrMissingStore       = errors.New("authsession: missing session store")
	ErrMissingEmail       = errors.New("authsession: missing email")
	ErrMissingPassword    = errors.New("authsession: missing password")
	ErrMissingResetToken  = errors.New("authsession: missing reset token")
	ErrMissingExpiryClaim = errors.New("authsession: token has no expiry claim")
)
