package sessionstore

import "errors"

var (
	ErrNotFound      = errors.New("sessionstore: no session stored")
	ErrNilSession    = errors.New("sessionstore: nil session")
	ErrEmptyToken    = errors.New("sessionstore: session has empty access token")
	ErrRedisNotReady = errors.New("sessionstore: redis is not ready")
)
