// Package middleware provides the bearer-token auth chain and the admin gate.
package middleware

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"prospectmanager/internal/apperrors"
	"prospectmanager/internal/auth"
	"prospectmanager/internal/model"
	"prospectmanager/internal/repository"
)

const identityContextKey = "identity"

// Auth returns middleware that authenticates a request in two steps: verify
// the bearer token (signature and expiry collapse into one generic 401), then
// load the subject's current user record and attach its identity projection.
// A deleted user fails the second step, which is what makes
// revocation-by-deletion work even though tokens themselves are stateless.
func Auth(tokens *auth.TokenService, users repository.UserRepository) echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return tokens.Verify(tokenString)
		},
		// Every failure is the same generic 401: a missing header, a bad
		// signature and an expired token are indistinguishable to callers.
		ErrorHandler: func(c echo.Context, err error) error {
			return unauthorized()
		},
	})

	load := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*auth.Claims)
			if !ok {
				return unauthorized()
			}
			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return unauthorized()
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return unauthorized()
				}
				return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
					Error: err.Error(),
					Code:  "INTERNAL_ERROR",
				})
			}

			c.Set(identityContextKey, user.Identity())
			return next(c)
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return verify(load(next))
	}
}

// RequireAdmin rejects requests whose attached identity does not hold the
// admin role. Must run after Auth. The compare is an exact match: role values
// differing only in case are not privileged.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := CurrentIdentity(c)
		if !ok {
			return unauthorized()
		}
		if !identity.IsAdmin() {
			return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
				Error: apperrors.ErrForbidden.Error(),
				Code:  "FORBIDDEN",
			})
		}
		return next(c)
	}
}

// CurrentIdentity returns the identity attached by Auth, if any.
func CurrentIdentity(c echo.Context) (*model.Identity, bool) {
	identity, ok := c.Get(identityContextKey).(*model.Identity)
	return identity, ok
}

func unauthorized() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
		Error: apperrors.ErrUnauthenticated.Error(),
		Code:  "UNAUTHENTICATED",
	})
}
