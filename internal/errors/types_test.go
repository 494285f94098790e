package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorClassification(t *testing.T) {
	err := NewHTTPError(OpReplace, 404, "gone")
	assert.True(t, IsIrrecoverable(err))
	assert.Contains(t, err.Error(), "replace snapshot")
	assert.Contains(t, err.Error(), "404")

	assert.False(t, IsIrrecoverable(NewHTTPError(OpReplace, 429, "")))
	assert.False(t, IsIrrecoverable(NewHTTPError(OpFetch, 503, "")))
}

func TestNetworkErrorWrapsUnderlying(t *testing.T) {
	underlying := errors.New("connection reset")
	err := NewNetworkError(OpFetch, underlying)

	assert.False(t, IsIrrecoverable(err))
	require.ErrorIs(t, err, underlying)
	assert.Contains(t, err.Error(), "fetch snapshot")
}

func TestPlainErrorsAreRecoverable(t *testing.T) {
	assert.False(t, IsIrrecoverable(errors.New("boom")))
	assert.False(t, IsIrrecoverable(nil))
}
