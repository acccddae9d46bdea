package auth

import "context"

// MockJWTService is a function-field mock of JWTService for tests in other packages.
type MockJWTService struct {
	GenerateTokenFn func(ctx context.Context, accountID int64) (string, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*Claims, error)
}

var _ JWTService = (*MockJWTService)(nil)

func (m *MockJWTService) GenerateToken(ctx context.Context, accountID int64) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, accountID)
	}
	return "", nil
}

func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return nil, ErrInvalidToken
}
