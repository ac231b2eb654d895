package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"prospectmanager/internal/apperrors"
	"prospectmanager/internal/model"
	"prospectmanager/internal/service"
)

// ReferenceHandler bundles the LinkedIn profile and skill lookup endpoints.
type ReferenceHandler struct {
	svc service.ReferenceService
}

// NewReferenceHandler creates a new reference handler.
func NewReferenceHandler(svc service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{svc: svc}
}

// ProfileRequest is the create/update payload for a LinkedIn profile.
type ProfileRequest struct {
	Name  string  `json:"name" validate:"required"`
	Niche *string `json:"niche"`
}

// SkillRequest is the create payload for a skill.
type SkillRequest struct {
	Name string `json:"name" validate:"required"`
}

// ListProfiles godoc
// @Summary List LinkedIn profiles
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.LinkedInProfile
// @Router /profiles [get]
func (h *ReferenceHandler) ListProfiles(c echo.Context) error {
	profiles, err := h.svc.ListProfiles(c.Request().Context())
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, profiles)
}

// CreateProfile godoc
// @Summary Create LinkedIn profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body ProfileRequest true "Profile payload"
// @Success 201 {object} model.LinkedInProfile
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /profiles [post]
func (h *ReferenceHandler) CreateProfile(c echo.Context) error {
	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.svc.CreateProfile(c.Request().Context(), &model.LinkedInProfile{
		Name:  req.Name,
		Niche: req.Niche,
	})
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, profile)
}

// UpdateProfile godoc
// @Summary Update LinkedIn profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Profile ID"
// @Param profile body ProfileRequest true "Profile payload"
// @Success 200 {object} model.LinkedInProfile
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /profiles/{id} [put]
func (h *ReferenceHandler) UpdateProfile(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.svc.UpdateProfile(c.Request().Context(), &model.LinkedInProfile{
		ID:    uint(id),
		Name:  req.Name,
		Niche: req.Niche,
	})
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, profile)
}

// DeleteProfile godoc
// @Summary Delete LinkedIn profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Profile ID"
// @Success 204 "deleted"
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /profiles/{id} [delete]
func (h *ReferenceHandler) DeleteProfile(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteProfile(c.Request().Context(), uint(id)); err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// ListSkills godoc
// @Summary List skills
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Skill
// @Router /skills [get]
func (h *ReferenceHandler) ListSkills(c echo.Context) error {
	skills, err := h.svc.ListSkills(c.Request().Context())
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, skills)
}

// CreateSkill godoc
// @Summary Create skill
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param skill body SkillRequest true "Skill payload"
// @Success 201 {object} model.Skill
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /skills [post]
func (h *ReferenceHandler) CreateSkill(c echo.Context) error {
	var req SkillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	skill, err := h.svc.CreateSkill(c.Request().Context(), &model.Skill{Name: req.Name})
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, skill)
}

// DeleteSkill godoc
// @Summary Delete skill
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Param id path int true "Skill ID"
// @Success 204 "deleted"
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /skills/{id} [delete]
func (h *ReferenceHandler) DeleteSkill(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteSkill(c.Request().Context(), uint(id)); err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
