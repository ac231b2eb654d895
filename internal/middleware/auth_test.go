package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"prospectmanager/internal/auth"
	"prospectmanager/internal/model"
	"prospectmanager/internal/repository"
)

// stubUserRepo serves FindByID from a map; the auth chain uses nothing else.
type stubUserRepo struct {
	byID map[uuid.UUID]*model.User
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

func (s *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	if u, ok := s.byID[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) Create(context.Context, *model.User) error  { return nil }
func (s *stubUserRepo) Update(context.Context, *model.User) error  { return nil }
func (s *stubUserRepo) Delete(context.Context, uuid.UUID) error    { return nil }
func (s *stubUserRepo) List(context.Context) ([]model.User, error) { return nil, nil }
func (s *stubUserRepo) FindByEmail(context.Context, string) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (s *stubUserRepo) FindByLogin(context.Context, string) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func okHandler(c echo.Context) error {
	identity, ok := CurrentIdentity(c)
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "identity missing")
	}
	return c.JSON(http.StatusOK, identity)
}

func doRequest(t *testing.T, mw []echo.MiddlewareFunc, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	chain := okHandler
	for i := len(mw) - 1; i >= 0; i-- {
		chain = mw[i](chain)
	}
	e.GET("/protected", chain)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuth(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	user := &model.User{
		ID:    uuid.New(),
		Email: "admin@prospectmanager.com",
		Name:  "Admin User",
		Role:  model.RoleAdmin,
	}
	repo := &stubUserRepo{byID: map[uuid.UUID]*model.User{user.ID: user}}
	mw := []echo.MiddlewareFunc{Auth(tokens, repo)}

	t.Run("missing header", func(t *testing.T) {
		rec := doRequest(t, mw, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		rec := doRequest(t, mw, "Basic dXNlcjpwYXNz")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := doRequest(t, mw, "Bearer not-a-token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := auth.NewTokenService("other-secret")
		token, err := other.Issue(user.ID, user.Role)
		assert.NoError(t, err)
		rec := doRequest(t, mw, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token but user deleted", func(t *testing.T) {
		token, err := tokens.Issue(uuid.New(), model.RoleAdmin)
		assert.NoError(t, err)
		rec := doRequest(t, mw, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token attaches identity", func(t *testing.T) {
		token, err := tokens.Issue(user.ID, user.Role)
		assert.NoError(t, err)
		rec := doRequest(t, mw, "Bearer "+token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), user.Email)
		assert.NotContains(t, rec.Body.String(), "password")
	})
}

func TestRequireAdmin(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")

	newUser := func(role string) *model.User {
		return &model.User{
			ID:    uuid.New(),
			Email: role + "@prospectmanager.com",
			Name:  "User",
			Role:  role,
		}
	}

	tests := []struct {
		name     string
		role     string
		expected int
	}{
		{"admin passes", model.RoleAdmin, http.StatusOK},
		{"member is forbidden", model.RoleMember, http.StatusForbidden},
		{"profile is forbidden", model.RoleProfile, http.StatusForbidden},
		// exact-match gate: case variants are not privileged
		{"case variant is forbidden", "Admin", http.StatusForbidden},
		{"padded variant is forbidden", "admin ", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := newUser(tt.role)
			repo := &stubUserRepo{byID: map[uuid.UUID]*model.User{user.ID: user}}
			mw := []echo.MiddlewareFunc{Auth(tokens, repo), RequireAdmin}

			token, err := tokens.Issue(user.ID, user.Role)
			assert.NoError(t, err)
			rec := doRequest(t, mw, "Bearer "+token)
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}

func TestRequireAdmin_WithoutAuth(t *testing.T) {
	rec := doRequest(t, []echo.MiddlewareFunc{RequireAdmin}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
