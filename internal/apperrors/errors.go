// Package apperrors defines the domain error taxonomy and its HTTP mapping.
package apperrors

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

var (
	// ErrNoSuchAccount is returned when a login does not match any user.
	ErrNoSuchAccount = errors.New("no account found for the given credentials")
	// ErrNoPasswordSet is returned when the matched user has no password hash.
	ErrNoPasswordSet = errors.New("no password set for this account")
	// ErrBadCredentials is returned when password verification fails.
	ErrBadCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated is returned when a request carries no valid identity.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden is returned when an authenticated identity lacks the required role.
	ErrForbidden = errors.New("admin access required")
	// ErrUserNotFound is returned when a referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrProspectNotFound is returned when a referenced prospect does not exist.
	ErrProspectNotFound = errors.New("prospect not found")
	// ErrProfileNotFound is returned when a referenced LinkedIn profile does not exist.
	ErrProfileNotFound = errors.New("linkedin profile not found")
	// ErrSkillNotFound is returned when a referenced skill does not exist.
	ErrSkillNotFound = errors.New("skill not found")
	// ErrConflict is returned when a write violates a uniqueness constraint.
	ErrConflict = errors.New("record already exists")
	// ErrProfileRequired is returned when a profile-bound user has no linked profile.
	ErrProfileRequired = errors.New("profile role requires a linkedin_profile_id")
	// ErrInvalidRole is returned when a role value is not one of the known constants.
	ErrInvalidRole = errors.New("invalid role")
)

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP classifies a domain error into an HTTP error. Unknown errors
// become 500 with the message surfaced as-is; this is an internal tool, not a
// public API.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrProfileRequired), errors.Is(err, ErrInvalidRole):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	case errors.Is(err, ErrNoSuchAccount):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "NO_SUCH_ACCOUNT")
	case errors.Is(err, ErrNoPasswordSet):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "NO_PASSWORD_SET")
	case errors.Is(err, ErrBadCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "BAD_CREDENTIALS")
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHENTICATED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrProspectNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROSPECT_NOT_FOUND")
	case errors.Is(err, ErrProfileNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROFILE_NOT_FOUND")
	case errors.Is(err, ErrSkillNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "SKILL_NOT_FOUND")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NewHTTPError(http.StatusNotFound, "record not found", "NOT_FOUND")
	case errors.Is(err, ErrConflict), errors.Is(err, gorm.ErrDuplicatedKey):
		return NewHTTPError(http.StatusConflict, ErrConflict.Error(), "CONFLICT")
	default:
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "INTERNAL_ERROR")
	}
}
