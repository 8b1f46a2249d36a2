package testutil

import (
	"testing"

	"github.com/cimile-club/lineup-api/internal/config"
	"github.com/cimile-club/lineup-api/internal/model"
	"github.com/cimile-club/lineup-api/internal/shared/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plaintext password every seeded test user gets.
const TestPassword = "test-password-1234"

// SeedUser inserts an active user with the given role.
func SeedUser(t *testing.T, db *gorm.DB, username string, role model.UserRole) *model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to seed user %s: %v", username, err)
	}
	return user
}

// AccessToken issues a real signed access token for a seeded user.
func AccessToken(t *testing.T, cfg *config.Config, username string) string {
	t.Helper()

	tokenString, err := token.NewJWTManager(cfg).GenerateAccessToken(username)
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}
	return tokenString
}
