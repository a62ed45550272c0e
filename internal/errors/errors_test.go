package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Interzoneism/tactica/internal/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.CodeNotFound, "action not found")
	require.NotNil(t, err)
	assert.Equal(t, errors.CodeNotFound, err.Code)
	assert.Equal(t, "action not found", err.Message)
	assert.Equal(t, "NOT_FOUND: action not found", err.Error())
}

func TestWrap_PreservesCode(t *testing.T) {
	inner := errors.NotFound("cooldown state missing")
	wrapped := errors.Wrap(inner, "failed to load ledger")

	assert.Equal(t, errors.CodeNotFound, wrapped.Code)
	assert.True(t, errors.IsNotFound(wrapped))
	assert.ErrorIs(t, wrapped, inner)
}

func TestWrap_PlainErrorBecomesInternal(t *testing.T) {
	inner := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(inner, "redis unavailable")

	assert.Equal(t, errors.CodeInternal, wrapped.Code)
	assert.True(t, errors.IsInternal(wrapped))
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "nothing"))
}

func TestWrapWithCode(t *testing.T) {
	inner := fmt.Errorf("key does not exist")
	wrapped := errors.WrapWithCode(inner, errors.CodeNotFound, "ledger not found")

	assert.True(t, errors.IsNotFound(wrapped))
	assert.Equal(t, "ledger not found", errors.GetMessage(wrapped))
}

func TestWithMeta(t *testing.T) {
	err := errors.NotFound("action not found").
		WithMeta("action_id", "fireball").
		WithMeta("actor_id", "actor_1")

	meta := errors.GetMeta(err)
	require.NotNil(t, meta)
	assert.Equal(t, "fireball", meta["action_id"])
	assert.Equal(t, "actor_1", meta["actor_id"])
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeInvalidArgument, errors.GetCode(errors.InvalidArgument("bad input")))
	assert.Equal(t, errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
}

func TestIs_MatchesOnCode(t *testing.T) {
	a := errors.NotFound("first")
	b := errors.NotFound("second")
	assert.True(t, errors.Is(a, b))

	c := errors.InvalidArgument("third")
	assert.False(t, errors.Is(a, c))
}
