package auth

import (
	"strings"
	"testing"

	"github.com/phrazzld/social-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewPasswordHasher(t *testing.T) {
	t.Parallel()

	h, err := NewPasswordHasher(config.AuthConfig{PasswordScheme: config.PasswordSchemePlain})
	require.NoError(t, err)
	assert.IsType(t, PlainHasher{}, h)

	h, err = NewPasswordHasher(config.AuthConfig{PasswordScheme: config.PasswordSchemeBcrypt, BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)
	assert.IsType(t, &BcryptHasher{}, h)

	_, err = NewPasswordHasher(config.AuthConfig{PasswordScheme: "rot13"})
	assert.Error(t, err)
}

func TestPlainHasher(t *testing.T) {
	t.Parallel()

	h := PlainHasher{}
	stored, err := h.Hash("secret")
	require.NoError(t, err)
	assert.Equal(t, "secret", stored)

	assert.NoError(t, h.Compare(stored, "secret"))
	assert.ErrorIs(t, h.Compare(stored, "Secret"), ErrPasswordMismatch)
	assert.ErrorIs(t, h.Compare(stored, ""), ErrPasswordMismatch)
	assert.True(t, h.RevealsPassword())
}

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(bcrypt.MinCost)
	stored, err := h.Hash("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", stored)

	assert.NoError(t, h.Compare(stored, "secret"))
	assert.ErrorIs(t, h.Compare(stored, "wrong"), ErrPasswordMismatch)
	assert.Error(t, h.Compare("not-a-hash", "secret"))
	assert.False(t, h.RevealsPassword())

	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
}

func TestBcryptHasher_LongPassword(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(bcrypt.MinCost)
	long := strings.Repeat("a", 80)

	stored, err := h.Hash(long)
	require.NoError(t, err)
	assert.NoError(t, h.Compare(stored, long))

	// Differs only after byte 72, which bcrypt alone would ignore.
	assert.ErrorIs(t, h.Compare(stored, strings.Repeat("a", 79)+"b"), ErrPasswordMismatch)
	assert.ErrorIs(t, h.Compare(stored, strings.Repeat("a", 72)), ErrPasswordMismatch)
}
