package sessionstore

import "context"

// Session is the persisted client-side session value. It carries no expiry
// metadata of its own: validity is derived from the token's embedded claim
// by the auth layer.
type Session struct {
	// AccessToken is the bearer credential attached to every API request.
	AccessToken string `json:"access_token"`

	// Restricted marks the demo/guest account so the UI can hide the
	// management navigation. Advisory only — never a security boundary.
	Restricted bool `json:"restricted,omitempty"`
}

// Store is the single-slot persistence interface shared by the auth
// session manager and the resource gateway.
type Store interface {
	// Get returns the stored session, or ErrNotFound when the slot is empty.
	Get(ctx context.Context) (*Session, error)

	// Set overwrites the slot with the given session.
	Set(ctx context.Context, session *Session) error

	// Clear empties the slot. Clearing an already-empty slot is not an error.
	Clear(ctx context.Context) error
}
