package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Skotchmaster/salon_pos/internal/models"
	"github.com/Skotchmaster/salon_pos/internal/repo"
	"github.com/Skotchmaster/salon_pos/pkg/hash"
	"github.com/Skotchmaster/salon_pos/pkg/logging"
	"github.com/Skotchmaster/salon_pos/pkg/tokens"
)

const RoleAdmin = "admin"

type AuthService struct {
	Repo   *repo.GormRepo
	Tokens *tokens.Manager
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login", "username", username)

	if strings.TrimSpace(username) == "" || password == "" {
		return "", fmt.Errorf("username & password required: %w", ErrValidation)
	}

	user, err := s.Repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login_failed", "status", 401, "reason", "unknown user")
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "status", 401, "reason", "password mismatch")
		return "", ErrInvalidCredentials
	}

	token, _, err := s.Tokens.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	l.Info("login_success", "user_id", user.ID)
	return token, nil
}

// SeedAdmin creates the first account when the users table is empty.
func (s *AuthService) SeedAdmin(ctx context.Context, username, password string) (bool, error) {
	l := logging.FromContext(ctx).With("svc", "auth.seed_admin")

	n, err := s.Repo.CountUsers(ctx)
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	if err := s.Repo.CreateUser(ctx, &models.User{
		Username:     username,
		PasswordHash: pwHash,
		Role:         RoleAdmin,
	}); err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}

	l.Info("admin_created", "username", username)
	return true, nil
}
