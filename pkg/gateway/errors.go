package gateway

import "errors"

// ErrInvalidConfig is returned when environment parsing fails.
var ErrInvalidConfig = errors.New("gateway: invalid configuration")

// Boundary validation errors. These indicate caller bugs, not backend
// failures, and are returned as-is rather than normalized.
var (
	ErrMissingBaseURL  = errors.New("gateway: missing base URL")
	ErrMissingStore    = errors.New("gateway: missing session store")
	ErrMissingResource = errors.New("gateway: missing resource name")
	ErrMissingID       = errors.New("gateway: missing record id")
	ErrNoIDs           = errors.New("gateway: no record ids supplied")
	ErrNoVariables     = errors.New("gateway: no variables supplied")
	ErrNoItems         = errors.New("gateway: no items supplied")
	ErrMissingPath     = errors.New("gateway: missing request path")
	ErrMissingMethod   = errors.New("gateway: missing request method")
)
