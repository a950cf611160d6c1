package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_WithMessageDoesNotMutateSentinel(t *testing.T) {
	derived := ErrClientNotFound.WithMessage("client %d not found", 7)

	assert.Equal(t, "client 7 not found", derived.Message)
	assert.Equal(t, "Client not found", ErrClientNotFound.Message)
	assert.True(t, Is(derived, ErrClientNotFound))
	assert.False(t, Is(derived, ErrTourNotFound))
}

func TestAppError_WrapKeepsCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := ErrSnapshotIO.Wrap(cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrSnapshotIO)
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("save: %w", ErrReferenced.WithMessage("busy"))

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeReferenced, appErr.Code)
	assert.Equal(t, 409, appErr.StatusCode)

	_, ok = As(fmt.Errorf("plain"))
	assert.False(t, ok)
}
