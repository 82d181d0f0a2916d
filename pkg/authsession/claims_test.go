package authsession

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenExpiry(t *testing.T) {
	t.Parallel()

	t.Run("decodes expiry without verifying the signature", func(t *testing.T) {
		t.Parallel()

		expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"exp": expiresAt.Unix(),
		}).SignedString([]byte("a key the client never sees"))
		require.NoError(t, err)

		got, err := tokenExpiry(token)
		require.NoError(t, err)
		assert.True(t, got.Equal(expiresAt))
	})

	t.Run("rejects a token without an expiry claim", func(t *testing.T) {
		t.Parallel()

		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "user-1",
		}).SignedString([]byte("key"))
		require.NoError(t, err)

		_, err = tokenExpiry(token)
		assert.ErrorIs(t, err, ErrMissingExpiryClaim)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		t.Parallel()

		_, err := tokenExpiry("definitely.not.a-jwt")
		assert.Error(t, err)
	})
}
