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
	"github.com/govportal/citizen_services_backend/internal/platform/config"
)

// feedbackHandler handles feedback submission and admin triage.
type feedbackHandler struct {
	feedbackService portssvc.FeedbackSvcFacade
}

func newFeedbackHandler(fs portssvc.FeedbackSvcFacade) *feedbackHandler {
	return &feedbackHandler{feedbackService: fs}
}

// registerFeedbackSubmitRoute registers the public submission route. A valid
// citizen token attaches the submitter; without one the entry is anonymous.
func registerFeedbackSubmitRoute(rg *gin.RouterGroup, cfg *config.Config, feedbackService portssvc.FeedbackSvcFacade) {
	h := newFeedbackHandler(feedbackService)

	rg.POST("/feedback", middleware.OptionalAuthMiddleware(cfg.JWTSecret), h.submitFeedback)
}

// registerFeedbackTriageRoutes registers the admin triage routes.
func registerFeedbackTriageRoutes(rg *gin.RouterGroup, feedbackService portssvc.FeedbackSvcFacade) {
	h := newFeedbackHandler(feedbackService)

	rg.GET("/feedback", h.listFeedback)
	rg.PUT("/feedback/:id/status", h.updateFeedbackStatus)
}

// submitFeedback godoc
// @Summary Submit feedback
// @Description Files a complaint or suggestion. Authentication is optional; anonymous submissions are accepted.
// @Tags feedback
// @Accept json
// @Produce json
// @Param feedback body dto.SubmitFeedbackRequest true "Feedback details"
// @Success 201 {object} dto.FeedbackResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /feedback [post]
func (h *feedbackHandler) submitFeedback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	var userID *int64
	if id, ok := middleware.GetUserIDFromContext(c); ok {
		userID = &id
	}

	fb, err := h.feedbackService.SubmitFeedback(c.Request.Context(), userID, req)
	if err != nil {
		logger.Error("Failed to submit feedback", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to submit feedback"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToFeedbackResponse(fb, ""))
}

// listFeedback godoc
// @Summary List all feedback
// @Description Returns every feedback entry, newest first, with submitter emails resolved.
// @Tags feedback
// @Produce json
// @Success 200 {array} dto.FeedbackResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/feedback [get]
func (h *feedbackHandler) listFeedback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.feedbackService.ListAllFeedback(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list feedback", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve feedback"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// updateFeedbackStatus godoc
// @Summary Update feedback status
// @Description Moves a feedback entry through triage (New, In_Progress, Resolved).
// @Tags feedback
// @Accept json
// @Produce json
// @Param id path int true "Feedback ID"
// @Param status body dto.UpdateFeedbackStatusRequest true "New status"
// @Success 200 {object} dto.FeedbackResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/feedback/{id}/status [put]
func (h *feedbackHandler) updateFeedbackStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	feedbackID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid feedback ID"})
		return
	}

	var req dto.UpdateFeedbackStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	fb, err := h.feedbackService.UpdateFeedbackStatus(c.Request.Context(), feedbackID, adminID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Feedback not found"})
			return
		}
		logger.Error("Failed to update feedback status", slog.String("error", err.Error()), slog.Int64("feedback_id", feedbackID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update feedback"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFeedbackResponse(fb, ""))
}
