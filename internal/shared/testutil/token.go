package testutil

import (
	"github.com/cimile-club/lineup-api/internal/shared/token"
)

// MockTokenManager is a mock implementation of token.Manager for testing
type MockTokenManager struct {
	GenerateAccessTokenFunc  func(username string) (string, error)
	GenerateRefreshTokenFunc func(username string) (string, error)
	ValidateTokenFunc        func(tokenString string) (*token.Claims, error)
}

func (m *MockTokenManager) GenerateAccessToken(username string) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(username)
	}
	return "mock-access-token", nil
}

func (m *MockTokenManager) GenerateRefreshToken(username string) (string, error) {
	if m.GenerateRefreshTokenFunc != nil {
		return m.GenerateRefreshTokenFunc(username)
	}
	return "mock-refresh-token", nil
}

func (m *MockTokenManager) ValidateToken(tokenString string) (*token.Claims, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(tokenString)
	}
	return nil, nil
}

// Ensure MockTokenManager implements token.Manager
var _ token.Manager = (*MockTokenManager)(nil)

// NewMockTokenManager creates a new mock token manager with default behavior
func NewMockTokenManager() *MockTokenManager {
	return &MockTokenManager{}
}
