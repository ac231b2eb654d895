package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"prospectmanager/internal/apperrors"
	"prospectmanager/internal/auth"
	"prospectmanager/internal/model"
)

func TestUserService_CreateUser(t *testing.T) {
	profileID := uint(1)

	tests := []struct {
		name          string
		input         CreateUserInput
		setupMock     func(*MockUserRepository)
		expectedError error
		check         func(t *testing.T, user *model.User)
	}{
		{
			name: "defaults to member role, email normalized",
			input: CreateUserInput{
				Email: " Jane@Example.com ",
				Name:  "Jane",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			check: func(t *testing.T, user *model.User) {
				assert.Equal(t, "jane@example.com", user.Email)
				assert.Equal(t, model.RoleMember, user.Role)
				assert.Nil(t, user.PasswordHash)
			},
		},
		{
			name: "optional password is hashed",
			input: CreateUserInput{
				Email:    "jane@example.com",
				Name:     "Jane",
				Password: "Secret12",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			check: func(t *testing.T, user *model.User) {
				assert.NotNil(t, user.PasswordHash)
				assert.True(t, auth.CheckPassword("Secret12", *user.PasswordHash))
			},
		},
		{
			name: "profile role with linked profile",
			input: CreateUserInput{
				Email:             "sabeeh@example.com",
				Name:              "Sabeeh",
				Role:              model.RoleProfile,
				LinkedInProfileID: &profileID,
			},
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			check: func(t *testing.T, user *model.User) {
				assert.Equal(t, model.RoleProfile, user.Role)
				assert.Equal(t, &profileID, user.LinkedInProfileID)
			},
		},
		{
			name: "profile role without linked profile is rejected before any write",
			input: CreateUserInput{
				Email: "sabeeh@example.com",
				Name:  "Sabeeh",
				Role:  model.RoleProfile,
			},
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrProfileRequired,
		},
		{
			name: "unknown role is rejected",
			input: CreateUserInput{
				Email: "jane@example.com",
				Name:  "Jane",
				Role:  "Admin", // wrong casing is not a known role
			},
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrInvalidRole,
		},
		{
			name: "duplicate email maps to conflict",
			input: CreateUserInput{
				Email: "taken@example.com",
				Name:  "Jane",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo, nil)
			user, err := svc.CreateUser(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				if errors.Is(tt.expectedError, apperrors.ErrProfileRequired) || errors.Is(tt.expectedError, apperrors.ErrInvalidRole) {
					// validation failures must not reach the store
					mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				}
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				if tt.check != nil {
					tt.check(t, user)
				}
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_UpdateUser_ProfileInvariant(t *testing.T) {
	user := &model.User{
		ID:    uuid.New(),
		Email: "shuja@example.com",
		Name:  "Shuja",
		Role:  model.RoleMember,
	}

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	svc := NewUserService(mockRepo, nil)

	role := model.RoleProfile
	updated, err := svc.UpdateUser(context.Background(), user.ID, UpdateUserInput{Role: &role})

	assert.ErrorIs(t, err, apperrors.ErrProfileRequired)
	assert.Nil(t, updated)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
