package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrAccountNotFound))
	assert.True(t, IsNotFoundError(ErrMessageNotFound))
	assert.True(t, IsNotFoundError(NewStoreError("message", "find_by_id", "lookup failed", ErrMessageNotFound)))
	assert.False(t, IsNotFoundError(ErrUsernameExists))

	assert.True(t, IsDuplicateError(ErrUsernameExists))
	assert.False(t, IsDuplicateError(ErrInvalidEntity))
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection reset")

	err := NewStoreError("account", "save", "insert failed", cause)
	assert.Equal(t, "save operation on account failed: insert failed: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NewStoreError("account", "save", "no rows", nil)
	assert.Equal(t, "save operation on account failed: no rows", bare.Error())
	assert.Nil(t, bare.Unwrap())
}
