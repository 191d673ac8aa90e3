package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/govportal/citizen_services_backend/internal/apperrors"
	portssvc "github.com/govportal/citizen_services_backend/internal/core/ports/services"
	"github.com/govportal/citizen_services_backend/internal/dto"
	"github.com/govportal/citizen_services_backend/internal/middleware"
)

// applicationHandler handles citizen-facing application requests.
type applicationHandler struct {
	applicationService portssvc.ApplicationSvcFacade
}

func newApplicationHandler(as portssvc.ApplicationSvcFacade) *applicationHandler {
	return &applicationHandler{applicationService: as}
}

// RegisterApplicationRoutes registers all citizen application routes.
func RegisterApplicationRoutes(rg *gin.RouterGroup, applicationService portssvc.ApplicationSvcFacade) {
	h := newApplicationHandler(applicationService)

	applications := rg.Group("/applications")
	{
		applications.POST("", h.submitApplication)
		applications.GET("/my", h.listMyApplications)
		applications.GET("/:id", h.getApplication)
	}
}

// submitApplication godoc
// @Summary Submit an application
// @Description Submits a new application for a government service. A citizen profile must exist first.
// @Tags applications
// @Accept json
// @Produce json
// @Param application body dto.SubmitApplicationRequest true "Application details"
// @Success 201 {object} dto.ApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Service not found"
// @Failure 412 {object} ErrorResponse "Citizen profile required"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /applications [post]
func (h *applicationHandler) submitApplication(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	app, err := h.applicationService.SubmitApplication(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPreconditionFailed):
			c.JSON(http.StatusPreconditionFailed, ErrorResponse{Error: "A citizen profile is required before submitting an application"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Service not found"})
		default:
			logger.Error("Failed to submit application", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to submit application"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToApplicationResponse(app))
}

// listMyApplications godoc
// @Summary List my applications
// @Description Returns the authenticated citizen's applications with service names.
// @Tags applications
// @Produce json
// @Success 200 {array} dto.ApplicationListItem
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /applications/my [get]
func (h *applicationHandler) listMyApplications(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	items, err := h.applicationService.ListApplicationsForCitizen(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list applications", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve applications"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// getApplication godoc
// @Summary Get an application
// @Description Retrieves one of the authenticated citizen's applications by id.
// @Tags applications
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Application belongs to another citizen"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /applications/{id} [get]
func (h *applicationHandler) getApplication(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	applicationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid application ID"})
		return
	}

	app, err := h.applicationService.GetApplicationForCitizen(c.Request.Context(), applicationID, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Application not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "You do not have access to this application"})
		default:
			logger.Error("Failed to get application", slog.String("error", err.Error()), slog.Int64("application_id", applicationID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve application"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToApplicationResponse(app))
}
