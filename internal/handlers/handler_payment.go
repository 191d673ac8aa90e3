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

// paymentHandler handles citizen-facing payment requests.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// registerPaymentRoutes registers all payment routes.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/payments")
	{
		payments.POST("", h.processPayment)
		payments.GET("/applications/:id", h.getPaymentForApplication)
	}
}

// processPayment godoc
// @Summary Process a fee payment
// @Description Records a confirmed gateway payment for an application and marks the fee as paid. Only one payment may ever succeed per application.
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.ProcessPaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Application belongs to another citizen"
// @Failure 404 {object} ErrorResponse "Application not found"
// @Failure 409 {object} ErrorResponse "Duplicate payment or transaction ID"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments [post]
func (h *paymentHandler) processPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	payment, err := h.paymentService.ProcessPayment(c.Request.Context(), userID, req)
	if err != nil {
		var appErr *apperrors.AppError
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Application not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "You do not have access to this application"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Payment amount must be positive"})
		case errors.Is(err, apperrors.ErrConflict):
			msg := "Duplicate payment"
			if errors.As(err, &appErr) {
				msg = appErr.Message
			}
			c.JSON(http.StatusConflict, ErrorResponse{Error: msg})
		default:
			logger.Error("Failed to process payment", slog.String("error", err.Error()), slog.Int64("application_id", req.ApplicationID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Payment processing failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// getPaymentForApplication godoc
// @Summary Get the payment for an application
// @Description Retrieves the payment recorded for one of the citizen's applications.
// @Tags payments
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No payment recorded"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/applications/{id} [get]
func (h *paymentHandler) getPaymentForApplication(c *gin.Context) {
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

	payment, err := h.paymentService.GetPaymentByApplicationID(c.Request.Context(), applicationID, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Payment not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "You do not have access to this application"})
		default:
			logger.Error("Failed to get payment", slog.String("error", err.Error()), slog.Int64("application_id", applicationID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve payment"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}
