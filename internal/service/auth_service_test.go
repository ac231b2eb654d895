package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"prospectmanager/internal/apperrors"
	"prospectmanager/internal/auth"
	"prospectmanager/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByLogin(ctx context.Context, login string) (*model.User, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func hashOf(t *testing.T, plaintext string) *string {
	t.Helper()
	hash, err := auth.HashPassword(plaintext)
	assert.NoError(t, err)
	return &hash
}

func TestAuthService_LookupByEmail(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		email         string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:  "found, input normalized",
			email: "  Admin@ProspectManager.com ",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "admin@prospectmanager.com").Return(&model.User{
					ID:    userID,
					Email: "admin@prospectmanager.com",
					Name:  "Admin User",
					Role:  model.RoleAdmin,
				}, nil)
			},
		},
		{
			name:  "no such account",
			email: "nobody@prospectmanager.com",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@prospectmanager.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrNoSuchAccount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewAuthService(mockRepo, auth.NewTokenService("test-secret"))
			identity, err := svc.LookupByEmail(context.Background(), tt.email)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, identity)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, userID, identity.ID)
				assert.Equal(t, model.RoleAdmin, identity.Role)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_DashboardLogin(t *testing.T) {
	tests := []struct {
		name          string
		login         string
		password      string
		setupMock     func(t *testing.T, m *MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login by username",
			login:    "Admin",
			password: "Admin123!",
			setupMock: func(t *testing.T, m *MockUserRepository) {
				username := "admin"
				m.On("FindByLogin", mock.Anything, "admin").Return(&model.User{
					ID:           uuid.New(),
					Email:        "admin@prospectmanager.com",
					Username:     &username,
					Role:         model.RoleAdmin,
					PasswordHash: hashOf(t, "Admin123!"),
				}, nil)
			},
		},
		{
			name:     "no matching account",
			login:    "ghost",
			password: "whatever",
			setupMock: func(t *testing.T, m *MockUserRepository) {
				m.On("FindByLogin", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrNoSuchAccount,
		},
		{
			name:     "no password set",
			login:    "admin@prospectmanager.com",
			password: "Admin123!",
			setupMock: func(t *testing.T, m *MockUserRepository) {
				m.On("FindByLogin", mock.Anything, "admin@prospectmanager.com").Return(&model.User{
					ID:    uuid.New(),
					Email: "admin@prospectmanager.com",
					Role:  model.RoleAdmin,
				}, nil)
			},
			expectedError: apperrors.ErrNoPasswordSet,
		},
		{
			name:     "wrong password",
			login:    "admin",
			password: "wrong-password",
			setupMock: func(t *testing.T, m *MockUserRepository) {
				username := "admin"
				m.On("FindByLogin", mock.Anything, "admin").Return(&model.User{
					ID:           uuid.New(),
					Username:     &username,
					Email:        "admin@prospectmanager.com",
					Role:         model.RoleAdmin,
					PasswordHash: hashOf(t, "Admin123!"),
				}, nil)
			},
			expectedError: apperrors.ErrBadCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(t, mockRepo)

			tokens := auth.NewTokenService("test-secret")
			svc := NewAuthService(mockRepo, tokens)

			identity, token, err := svc.DashboardLogin(context.Background(), tt.login, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, identity)
				assert.Empty(t, token, "no token may be issued on a failed login")
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, identity)
				assert.NotEmpty(t, token)

				claims, err := tokens.Verify(token)
				assert.NoError(t, err)
				assert.Equal(t, identity.ID.String(), claims.UserID)
				assert.Equal(t, identity.Role, claims.Role)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	userID := uuid.New()

	t.Run("wrong current password leaves hash unchanged", func(t *testing.T) {
		stored := hashOf(t, "Admin123!")
		mockRepo := new(MockUserRepository)
		user := &model.User{ID: userID, Email: "admin@prospectmanager.com", PasswordHash: stored}
		mockRepo.On("FindByID", mock.Anything, userID).Return(user, nil)

		svc := NewAuthService(mockRepo, auth.NewTokenService("test-secret"))
		err := svc.ChangePassword(context.Background(), userID, "not-the-password", "NewPass456!")

		assert.ErrorIs(t, err, apperrors.ErrBadCredentials)
		assert.Same(t, stored, user.PasswordHash)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("no password set", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)

		svc := NewAuthService(mockRepo, auth.NewTokenService("test-secret"))
		err := svc.ChangePassword(context.Background(), userID, "anything", "NewPass456!")

		assert.ErrorIs(t, err, apperrors.ErrNoPasswordSet)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("successful rotation", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		user := &model.User{ID: userID, PasswordHash: hashOf(t, "Admin123!")}
		mockRepo.On("FindByID", mock.Anything, userID).Return(user, nil)
		mockRepo.On("Update", mock.Anything, user).Return(nil)

		svc := NewAuthService(mockRepo, auth.NewTokenService("test-secret"))
		err := svc.ChangePassword(context.Background(), userID, "Admin123!", "NewPass456!")

		assert.NoError(t, err)
		assert.NotNil(t, user.PasswordHash)
		assert.True(t, auth.CheckPassword("NewPass456!", *user.PasswordHash))
		mockRepo.AssertExpectations(t)
	})
}
