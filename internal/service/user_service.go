package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"prospectmanager/internal/apperrors"
	"prospectmanager/internal/auth"
	"prospectmanager/internal/cache"
	"prospectmanager/internal/model"
	"prospectmanager/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// CreateUserInput carries the fields an admin supplies when creating a user.
// Password is optional; absent means the user cannot use password login until
// one is assigned.
type CreateUserInput struct {
	Email             string
	Username          *string
	Name              string
	Role              string
	Password          string
	LinkedInProfileID *uint
}

// UpdateUserInput carries the mutable user fields. Nil pointers leave the
// corresponding column unchanged.
type UpdateUserInput struct {
	Email             *string
	Username          *string
	Name              *string
	Role              *string
	LinkedInProfileID *uint
}

// UserService exposes user management operations.
type UserService interface {
	CreateUser(ctx context.Context, in CreateUserInput) (*model.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, in UpdateUserInput) (*model.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:%s", id)
}

func validRole(role string) bool {
	switch role {
	case model.RoleAdmin, model.RoleMember, model.RoleProfile:
		return true
	}
	return false
}

func (s *userService) CreateUser(ctx context.Context, in CreateUserInput) (*model.User, error) {
	role := in.Role
	if role == "" {
		role = model.RoleMember
	}
	if !validRole(role) {
		return nil, apperrors.ErrInvalidRole
	}
	// Profile-bound invariant: checked before any write so no row is created.
	if role == model.RoleProfile && in.LinkedInProfileID == nil {
		return nil, apperrors.ErrProfileRequired
	}

	user := &model.User{
		ID:                uuid.New(),
		Email:             normalizeLogin(in.Email),
		Name:              in.Name,
		Role:              role,
		LinkedInProfileID: in.LinkedInProfileID,
	}
	if in.Username != nil {
		username := normalizeLogin(*in.Username)
		user.Username = &username
	}
	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = &hash
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrConflict
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, in UpdateUserInput) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if in.Email != nil {
		user.Email = normalizeLogin(*in.Email)
	}
	if in.Username != nil {
		username := normalizeLogin(*in.Username)
		user.Username = &username
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Role != nil {
		if !validRole(*in.Role) {
			return nil, apperrors.ErrInvalidRole
		}
		user.Role = *in.Role
	}
	if in.LinkedInProfileID != nil {
		user.LinkedInProfileID = in.LinkedInProfileID
	}
	if user.Role == model.RoleProfile && user.LinkedInProfileID == nil {
		return nil, apperrors.ErrProfileRequired
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrConflict
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
