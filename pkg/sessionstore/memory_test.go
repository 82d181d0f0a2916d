package sessionstore_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Slymcode/cipmn-crm/pkg/sessionstore"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	t.Parallel()

	store := sessionstore.NewMemoryStore()
	ctx := context.Background()

	t.Run("empty slot reports not found", func(t *testing.T) {
		sess, err := store.Get(ctx)
		assert.ErrorIs(t, err, sessionstore.ErrNotFound)
		assert.Nil(t, sess)
	})

	t.Run("set then get returns the session", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, &sessionstore.Session{
			AccessToken: "tok-123",
			Restricted:  true,
		}))

		sess, err := store.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "tok-123", sess.AccessToken)
		assert.True(t, sess.Restricted)
	})

	t.Run("set overwrites the previous session", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, &sessionstore.Session{AccessToken: "tok-456"}))

		sess, err := store.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "tok-456", sess.AccessToken)
		assert.False(t, sess.Restricted)
	})

	t.Run("clear empties the slot", func(t *testing.T) {
		require.NoError(t, store.Clear(ctx))

		_, err := store.Get(ctx)
		assert.ErrorIs(t, err, sessionstore.ErrNotFound)
	})

	t.Run("clearing an empty slot is not an error", func(t *testing.T) {
		assert.NoError(t, store.Clear(ctx))
	})
}

func TestMemoryStore_Validation(t *testing.T) {
	t.Parallel()

	store := sessionstore.NewMemoryStore()
	ctx := context.Background()

	assert.ErrorIs(t, store.Set(ctx, nil), sessionstore.ErrNilSession)
	assert.ErrorIs(t, store.Set(ctx, &sessionstore.Session{}), sessionstore.ErrEmptyToken)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	t.Parallel()

	store := sessionstore.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, &sessionstore.Session{AccessToken: "tok"}))

	sess, err := store.Get(ctx)
	require.NoError(t, err)
	sess.AccessToken = "mutated"

	again, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", again.AccessToken)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	store := sessionstore.NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Set(ctx, &sessionstore.Session{AccessToken: "tok"})
		}()
		go func() {
			defer wg.Done()
			_, _ = store.Get(ctx)
		}()
	}
	wg.Wait()
}
