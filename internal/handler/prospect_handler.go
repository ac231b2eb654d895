package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"prospectmanager/internal/apperrors"
	"prospectmanager/internal/model"
	"prospectmanager/internal/service"
)

// ProspectHandler bundles prospect endpoints.
type ProspectHandler struct {
	svc service.ProspectService
}

// NewProspectHandler creates a new prospect handler.
func NewProspectHandler(svc service.ProspectService) *ProspectHandler {
	return &ProspectHandler{svc: svc}
}

// ProspectRequest is the create/update payload posted by the extension.
type ProspectRequest struct {
	UserID      string `json:"user_id" validate:"required,uuid"`
	Name        string `json:"name" validate:"required"`
	LinkedInURL string `json:"linkedin_url"`
	Company     string `json:"company"`
	Title       string `json:"title"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

// ListProspects godoc
// @Summary List all prospects, newest first
// @Tags prospects
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Prospect
// @Router /prospects [get]
func (h *ProspectHandler) ListProspects(c echo.Context) error {
	prospects, err := h.svc.ListProspects(c.Request().Context())
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, prospects)
}

// ListByUser godoc
// @Summary List prospects belonging to a user
// @Tags prospects
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {array} model.Prospect
// @Router /prospects/user/{userId} [get]
func (h *ProspectHandler) ListByUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	prospects, err := h.svc.ListByUser(c.Request().Context(), userID)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, prospects)
}

// GetProspect godoc
// @Summary Get prospect by id
// @Tags prospects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Prospect ID"
// @Success 200 {object} model.Prospect
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /prospects/{id} [get]
func (h *ProspectHandler) GetProspect(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	prospect, err := h.svc.GetProspect(c.Request().Context(), id)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, prospect)
}

// CreateProspect godoc
// @Summary Create prospect
// @Tags prospects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param prospect body ProspectRequest true "Prospect payload"
// @Success 201 {object} model.Prospect
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /prospects [post]
func (h *ProspectHandler) CreateProspect(c echo.Context) error {
	var req ProspectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	prospect := &model.Prospect{
		UserID:      uuid.MustParse(req.UserID),
		Name:        req.Name,
		LinkedInURL: req.LinkedInURL,
		Company:     req.Company,
		Title:       req.Title,
		Status:      req.Status,
		Notes:       req.Notes,
	}
	created, err := h.svc.CreateProspect(c.Request().Context(), prospect)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateProspect godoc
// @Summary Update prospect
// @Tags prospects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Prospect ID"
// @Param prospect body ProspectRequest true "Prospect payload"
// @Success 200 {object} model.Prospect
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /prospects/{id} [put]
func (h *ProspectHandler) UpdateProspect(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req ProspectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	existing, err := h.svc.GetProspect(c.Request().Context(), id)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	existing.UserID = uuid.MustParse(req.UserID)
	existing.Name = req.Name
	existing.LinkedInURL = req.LinkedInURL
	existing.Company = req.Company
	existing.Title = req.Title
	if req.Status != "" {
		existing.Status = req.Status
	}
	existing.Notes = req.Notes

	updated, err := h.svc.UpdateProspect(c.Request().Context(), existing)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteProspect godoc
// @Summary Delete prospect
// @Tags prospects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Prospect ID"
// @Success 204 "deleted"
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /prospects/{id} [delete]
func (h *ProspectHandler) DeleteProspect(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteProspect(c.Request().Context(), id); err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
