package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/govportal/citizen_services_backend/internal/apperrors"
	"github.com/govportal/citizen_services_backend/internal/core/domain"
	portssvc "github.com/govportal/citizen_services_backend/internal/core/ports/services"
	"github.com/govportal/citizen_services_backend/internal/dto"
	"github.com/govportal/citizen_services_backend/internal/middleware"
)

// adminHandler handles the administrator review surface.
type adminHandler struct {
	applicationService portssvc.ApplicationSvcFacade
}

func newAdminHandler(as portssvc.ApplicationSvcFacade) *adminHandler {
	return &adminHandler{applicationService: as}
}

// registerAdminRoutes registers the admin application review routes.
func registerAdminRoutes(rg *gin.RouterGroup, applicationService portssvc.ApplicationSvcFacade) {
	h := newAdminHandler(applicationService)

	rg.GET("/applications", h.listApplications)
	rg.PUT("/applications/:id/approve", h.approveApplication)
	rg.PUT("/applications/:id/reject", h.rejectApplication)
	rg.GET("/stats", h.getStats)
}

// listApplications godoc
// @Summary List all applications
// @Description Returns every application with the applicant's profile details for review.
// @Tags admin
// @Produce json
// @Success 200 {array} dto.AdminApplicationListItem
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/applications [get]
func (h *adminHandler) listApplications(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.applicationService.ListAllApplications(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list applications for review", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve applications"})
		return
	}

	out := make([]dto.AdminApplicationListItem, 0, len(items))
	for i := range items {
		out = append(out, dto.ToAdminApplicationListItem(&items[i]))
	}
	c.JSON(http.StatusOK, out)
}

// approveApplication godoc
// @Summary Approve an application
// @Description Approves an application. The fee payment must be completed first.
// @Tags admin
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 412 {object} ErrorResponse "Payment still pending"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/applications/{id}/approve [put]
func (h *adminHandler) approveApplication(c *gin.Context) {
	h.reviewApplication(c, domain.ApplicationApproved)
}

// rejectApplication godoc
// @Summary Reject an application
// @Description Rejects an application regardless of its payment state.
// @Tags admin
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/applications/{id}/reject [put]
func (h *adminHandler) rejectApplication(c *gin.Context) {
	h.reviewApplication(c, domain.ApplicationRejected)
}

func (h *adminHandler) reviewApplication(c *gin.Context, status domain.ApplicationStatus) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	applicationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid application ID"})
		return
	}

	var app *domain.Application
	if status == domain.ApplicationApproved {
		app, err = h.applicationService.ApproveApplication(c.Request.Context(), applicationID, adminID)
	} else {
		app, err = h.applicationService.RejectApplication(c.Request.Context(), applicationID, adminID)
	}
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Application not found"})
		case errors.Is(err, apperrors.ErrPreconditionFailed):
			c.JSON(http.StatusPreconditionFailed, ErrorResponse{Error: "Cannot approve an application with a pending payment"})
		default:
			logger.Error("Failed to review application", slog.String("error", err.Error()), slog.Int64("application_id", applicationID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to review application"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToApplicationResponse(app))
}

// getStats godoc
// @Summary Application statistics
// @Description Returns total, pending, approved and rejected application counts.
// @Tags admin
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/stats [get]
func (h *adminHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.applicationService.GetApplicationStats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get application stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve statistics"})
		return
	}

	c.JSON(http.StatusOK, dto.StatsResponse{
		Total:    stats.Total,
		Pending:  stats.Pending,
		Approved: stats.Approved,
		Rejected: stats.Rejected,
	})
}
