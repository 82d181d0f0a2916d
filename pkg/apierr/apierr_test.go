package apierr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Slymcode/cipmn-crm/pkg/apierr"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("2xx without errors array is success", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, apierr.Normalize(http.StatusOK, []byte(`{"id":1}`)))
		assert.Nil(t, apierr.Normalize(http.StatusCreated, []byte(`[]`)))
	})

	t.Run("errors array on 200 is still a failure", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"errors":[{"message":"email taken","extensions":{"code":409}}]}`)
		err := apierr.Normalize(http.StatusOK, body)
		require.NotNil(t, err)
		assert.Equal(t, "email taken", err.Message)
		assert.Equal(t, http.StatusConflict, err.StatusCode)
	})

	t.Run("joins multiple error messages with a space", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"errors":[{"message":"name required"},{"message":"email invalid"}]}`)
		err := apierr.Normalize(http.StatusBadRequest, body)
		require.NotNil(t, err)
		assert.Equal(t, "name required email invalid", err.Message)
		assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	})

	t.Run("errors array without code falls back to status then 500", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"errors":[{"message":"boom"}]}`)
		err := apierr.Normalize(0, body)
		require.NotNil(t, err)
		assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	})

	t.Run("non-2xx uses backend message field", func(t *testing.T) {
		t.Parallel()

		err := apierr.Normalize(http.StatusUnauthorized, []byte(`{"message":"Invalid credentials"}`))
		require.NotNil(t, err)
		assert.Equal(t, "Invalid credentials", err.Message)
		assert.Equal(t, http.StatusUnauthorized, err.StatusCode)
	})

	t.Run("non-2xx with malformed body gets generic message", func(t *testing.T) {
		t.Parallel()

		err := apierr.Normalize(http.StatusBadGateway, []byte("<html>bad gateway</html>"))
		require.NotNil(t, err)
		assert.Equal(t, "Unknown error", err.Message)
		assert.Equal(t, http.StatusBadGateway, err.StatusCode)
	})

	t.Run("non-2xx with empty body gets generic message", func(t *testing.T) {
		t.Parallel()

		err := apierr.Normalize(http.StatusNotFound, nil)
		require.NotNil(t, err)
		assert.Equal(t, "Unknown error", err.Message)
		assert.Equal(t, http.StatusNotFound, err.StatusCode)
	})
}

func TestTransport(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: connection refused")
	err := apierr.Transport(cause)

	assert.Equal(t, "Something went wrong", err.Message)
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	assert.ErrorIs(t, err, cause)
	assert.NotContains(t, err.Message, "dial tcp")
}

func TestNew_Invariants(t *testing.T) {
	t.Parallel()

	err := apierr.New("", 0)
	assert.NotEmpty(t, err.Message)
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
}

func TestFrom(t *testing.T) {
	t.Parallel()

	t.Run("nil passes through", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, apierr.From(nil))
	})

	t.Run("typed error passes through unchanged", func(t *testing.T) {
		t.Parallel()

		orig := apierr.New("nope", http.StatusForbidden)
		assert.Same(t, orig, apierr.From(orig))
	})

	t.Run("plain error becomes transport fault", func(t *testing.T) {
		t.Parallel()

		err := apierr.From(errors.New("i/o timeout"))
		require.NotNil(t, err)
		assert.Equal(t, "Something went wrong", err.Message)
	})
}
