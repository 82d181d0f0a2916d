package sessionstore

import (
	"context"
	"sync"
)

// MemoryStore implements Store with an in-process slot. Suitable for tests
// and single-process deployments where the session does not need to
// survive a restart.
type MemoryStore struct {
	mu      sync.RWMutex
	session *Session
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Get returns a copy of the stored session so callers cannot mutate the
// slot behind the store's back.
func (m *MemoryStore) Get(ctx context.Context) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.session == nil {
		return nil, ErrNotFound
	}

	sessionCopy := *m.session
	return &sessionCopy, nil
}

// Set overwrites the slot.
func (m *MemoryStore) Set(ctx context.Context, session *Session) error {
	if session == nil {
		return ErrNilSession
	}
	if session.AccessToken == "" {
		return ErrEmptyToken
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sessionCopy := *session
	m.session = &sessionCopy
	return nil
}

// Clear empties the slot.
func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session = nil
	return nil
}
