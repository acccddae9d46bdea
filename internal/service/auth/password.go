package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/phrazzld/social-api/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher turns submitted passwords into their stored form and
// compares submissions against stored values.
type PasswordHasher interface {
	// Hash returns the value to persist for password.
	Hash(password string) (string, error)

	// Compare returns nil when password matches stored, ErrPasswordMismatch
	// when it does not, or another error if the comparison itself failed.
	Compare(stored, password string) error

	// RevealsPassword reports whether the stored form equals the submitted
	// password and may therefore be echoed back to the client.
	RevealsPassword() bool
}

// NewPasswordHasher selects the hasher named by cfg.PasswordScheme.
func NewPasswordHasher(cfg config.AuthConfig) (PasswordHasher, error) {
	switch cfg.PasswordScheme {
	case config.PasswordSchemePlain, "":
		return PlainHasher{}, nil
	case config.PasswordSchemeBcrypt:
		return NewBcryptHasher(cfg.BcryptCost), nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", cfg.PasswordScheme)
	}
}

// PlainHasher stores passwords verbatim.
type PlainHasher struct{}

// Hash returns password unchanged.
func (PlainHasher) Hash(password string) (string, error) {
	return password, nil
}

// Compare checks for exact equality in constant time.
func (PlainHasher) Compare(stored, password string) error {
	if subtle.ConstantTimeCompare([]byte(stored), []byte(password)) != 1 {
		return ErrPasswordMismatch
	}
	return nil
}

func (PlainHasher) RevealsPassword() bool { return true }

// bcryptMaxInput is the longest input bcrypt accepts.
const bcryptMaxInput = 72

// BcryptHasher stores bcrypt hashes. Passwords longer than bcrypt's 72-byte
// input limit are first reduced to a base64 SHA-256 digest, in both Hash and
// Compare.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher. Costs outside bcrypt's range
// fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(bcryptInput(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func (h *BcryptHasher) Compare(stored, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(stored), bcryptInput(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return err
}

func (h *BcryptHasher) RevealsPassword() bool { return false }

func bcryptInput(password string) []byte {
	if len(password) <= bcryptMaxInput {
		return []byte(password)
	}
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}
