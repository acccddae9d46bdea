package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for the account.
	GenerateToken(ctx context.Context, accountID int64) (string, error)

	// ValidateToken validates the provided token string and extracts the claims.
	// Returns ErrExpiredToken, ErrTokenNotYetValid or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the validated contents of an access token.
type Claims struct {
	// AccountID is the account the token was issued for.
	AccountID int64
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
