package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/recipegenie/backend/internal/mocks"
)

func TestRegisterAndLogin(t *testing.T) {
	users := &mocks.MockUserStore{}
	svc := NewAuthService(users, "secret")

	token, user, err := svc.Register(context.Background(), "Alice", "alice@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	require.NotNil(t, user)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))

	// Token resolves to the stored identity
	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)

	loginToken, loginUser, err := svc.Login(context.Background(), "alice@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, loginToken)
	assert.Equal(t, user.ID, loginUser.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := &mocks.MockUserStore{}
	svc := NewAuthService(users, "secret")

	_, _, err := svc.Register(context.Background(), "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), "Alice Again", "alice@example.com", "password456")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLoginInvalidCredentials(t *testing.T) {
	users := &mocks.MockUserStore{}
	svc := NewAuthService(users, "secret")

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Register(context.Background(), "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenRejectsForgedAndGarbage(t *testing.T) {
	users := &mocks.MockUserStore{}
	svc := NewAuthService(users, "secret")

	token, _, err := svc.Register(context.Background(), "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	other := NewAuthService(users, "different-secret")
	_, err = other.ValidateToken(token)
	assert.Error(t, err, "token signed with another secret is rejected")

	_, err = svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
