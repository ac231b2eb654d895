package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"prospectmanager/internal/apperrors"
	"prospectmanager/internal/auth"
	"prospectmanager/internal/model"
	"prospectmanager/internal/repository"
)

// AuthService handles both login flows and password changes.
type AuthService interface {
	// LookupByEmail is the passwordless extension flow: trust by email
	// possession, no token issued.
	LookupByEmail(ctx context.Context, email string) (*model.Identity, error)
	// DashboardLogin matches login against email or username and verifies the
	// password, returning the identity and a session token.
	DashboardLogin(ctx context.Context, login, password string) (*model.Identity, string, error)
	// ChangePassword verifies the current password before storing a new hash.
	ChangePassword(ctx context.Context, userID uuid.UUID, current, newPassword string) error
}

type authService struct {
	users  repository.UserRepository
	tokens *auth.TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenService) AuthService {
	return &authService{users: users, tokens: tokens}
}

// normalizeLogin lowercases and trims an email, username or login string so
// lookups and the unique indexes operate on one canonical form.
func normalizeLogin(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (s *authService) LookupByEmail(ctx context.Context, email string) (*model.Identity, error) {
	user, err := s.users.FindByEmail(ctx, normalizeLogin(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoSuchAccount
		}
		return nil, fmt.Errorf("lookup by email: %w", err)
	}
	return user.Identity(), nil
}

func (s *authService) DashboardLogin(ctx context.Context, login, password string) (*model.Identity, string, error) {
	user, err := s.users.FindByLogin(ctx, normalizeLogin(login))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.ErrNoSuchAccount
		}
		return nil, "", fmt.Errorf("find by login: %w", err)
	}

	if user.PasswordHash == nil {
		return nil, "", apperrors.ErrNoPasswordSet
	}
	if !auth.CheckPassword(password, *user.PasswordHash) {
		return nil, "", apperrors.ErrBadCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user.Identity(), token, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, current, newPassword string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if user.PasswordHash == nil {
		return apperrors.ErrNoPasswordSet
	}
	if !auth.CheckPassword(current, *user.PasswordHash) {
		return apperrors.ErrBadCredentials
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = &hash
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}
