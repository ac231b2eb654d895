package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"prospectmanager/internal/apperrors"
	"prospectmanager/internal/middleware"
	"prospectmanager/internal/model"
	"prospectmanager/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest is the passwordless extension login payload.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// DashboardLoginRequest is the credentialed dashboard login payload. Login is
// matched against email or username.
type DashboardLoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest carries a password rotation request.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// DashboardLoginResponse bundles the identity with the issued session token.
type DashboardLoginResponse struct {
	User  *model.Identity `json:"user"`
	Token string          `json:"token"`
}

// Login godoc
// @Summary Passwordless login for the browser extension
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Email"
// @Success 200 {object} model.Identity
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	identity, err := h.authService.LookupByEmail(c.Request().Context(), req.Email)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, identity)
}

// DashboardLogin godoc
// @Summary Credentialed login for the admin dashboard
// @Tags auth
// @Accept json
// @Produce json
// @Param request body DashboardLoginRequest true "Credentials"
// @Success 200 {object} DashboardLoginResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /auth/dashboard/login [post]
func (h *AuthHandler) DashboardLogin(c echo.Context) error {
	var req DashboardLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	identity, token, err := h.authService.DashboardLogin(c.Request().Context(), req.Login, req.Password)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, DashboardLoginResponse{User: identity, Token: token})
}

// Me godoc
// @Summary Current authenticated identity
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Identity
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: apperrors.ErrUnauthenticated.Error(),
			Code:  "UNAUTHENTICATED",
		})
	}
	return c.JSON(http.StatusOK, identity)
}

// ChangePassword godoc
// @Summary Change the current user's password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Passwords"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /auth/change-password [post]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: apperrors.ErrUnauthenticated.Error(),
			Code:  "UNAUTHENTICATED",
		})
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.authService.ChangePassword(c.Request().Context(), identity.ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		// A user with no password cannot rotate one; that is a bad request
		// here, unlike the login flow where it is an auth failure.
		if errors.Is(err, apperrors.ErrNoPasswordSet) {
			return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
				Error: err.Error(),
				Code:  "NO_PASSWORD_SET",
			})
		}
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
