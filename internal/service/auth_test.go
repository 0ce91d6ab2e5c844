package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_SeedAdminAndLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.Auth.SeedAdmin(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = env.Auth.SeedAdmin(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.False(t, created)

	user, err := env.Repo.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", user.PasswordHash)

	token, err := env.Auth.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := env.Auth.Tokens.Verify("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.Auth.SeedAdmin(ctx, "admin", "admin123")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "admin", password: "nope"},
		{name: "unknown user", username: "ghost", password: "admin123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := env.Auth.Login(ctx, tt.username, tt.password)
			require.Error(t, err)
			assert.Empty(t, token)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthService_Login_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "empty username", username: "", password: "secret"},
		{name: "empty password", username: "user", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := env.Auth.Login(ctx, tt.username, tt.password)
			require.Error(t, err)
			assert.Empty(t, token)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}
