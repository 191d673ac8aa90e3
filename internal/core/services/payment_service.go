package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/govportal/citizen_services_backend/internal/apperrors"
	"github.com/govportal/citizen_services_backend/internal/core/domain"
	portsrepo "github.com/govportal/citizen_services_backend/internal/core/ports/repositories"
	portssvc "github.com/govportal/citizen_services_backend/internal/core/ports/services"
	"github.com/govportal/citizen_services_backend/internal/dto"
	"github.com/govportal/citizen_services_backend/internal/middleware"
)

// paymentService is the fee-payment ledger. It is the only writer of payment
// records and the only caller that marks an application's fee as paid.
type paymentService struct {
	paymentRepo     portsrepo.PaymentRepository
	applicationRepo portsrepo.ApplicationRepository
}

// NewPaymentService creates a new paymentService.
func NewPaymentService(paymentRepo portsrepo.PaymentRepository, applicationRepo portsrepo.ApplicationRepository) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo:     paymentRepo,
		applicationRepo: applicationRepo,
	}
}

// ProcessPayment records a confirmed gateway payment against an application.
// The duplicate checks before the write are an early exit; the unique keys on
// payments(application_id) and payments(transaction_id) are the authoritative
// guard, and a constraint violation from a concurrent writer surfaces as the
// same conflict errors.
func (s *paymentService) ProcessPayment(ctx context.Context, userID int64, req dto.ProcessPaymentRequest) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	app, err := s.applicationRepo.FindApplicationByID(ctx, req.ApplicationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("application not found")
		}
		logger.Error("Failed to find application for payment", slog.String("error", err.Error()), slog.Int64("application_id", req.ApplicationID))
		return nil, err
	}

	if app.UserID != userID {
		logger.Warn("Payment attempted on another citizen's application", slog.Int64("application_id", req.ApplicationID), slog.Int64("user_id", userID))
		return nil, apperrors.NewAppError(403, "you do not have access to this application", apperrors.ErrForbidden)
	}

	if !req.Amount.IsPositive() {
		return nil, apperrors.NewAppError(400, "payment amount must be positive", apperrors.ErrValidation)
	}

	if _, err := s.paymentRepo.FindPaymentByApplicationID(ctx, req.ApplicationID); err == nil {
		return nil, apperrors.NewAppError(409, "payment already exists for this application", apperrors.ErrConflict)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check for existing payment", slog.String("error", err.Error()), slog.Int64("application_id", req.ApplicationID))
		return nil, err
	}

	if _, err := s.paymentRepo.FindPaymentByTransactionID(ctx, req.TransactionID); err == nil {
		return nil, apperrors.NewAppError(409, "this transaction ID was already used", apperrors.ErrConflict)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check for existing transaction", slog.String("error", err.Error()))
		return nil, err
	}

	payment := domain.Payment{
		ApplicationID: req.ApplicationID,
		Amount:        req.Amount,
		Method:        domain.PaymentMethod(req.PaymentMethod),
		Status:        domain.PaymentCompleted,
		TransactionID: req.TransactionID,
		PaymentDate:   time.Now(),
	}

	created, err := s.paymentRepo.CreatePaymentCompletingApplication(ctx, payment)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			// A concurrent writer won the race; the repository error carries
			// which unique key fired.
			return nil, err
		}
		logger.Error("Failed to record payment", slog.String("error", err.Error()), slog.Int64("application_id", req.ApplicationID))
		return nil, apperrors.NewAppError(500, "payment processing failed", err)
	}

	logger.Info("Payment recorded", slog.Int64("payment_id", created.PaymentID), slog.Int64("application_id", req.ApplicationID), slog.String("method", string(created.Method)))
	return created, nil
}

// GetPaymentByApplicationID retrieves the payment recorded for an application,
// enforcing ownership.
func (s *paymentService) GetPaymentByApplicationID(ctx context.Context, applicationID, userID int64) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	app, err := s.applicationRepo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find application for payment lookup", slog.String("error", err.Error()), slog.Int64("application_id", applicationID))
		}
		return nil, err
	}
	if app.UserID != userID {
		return nil, apperrors.NewAppError(403, "you do not have access to this application", apperrors.ErrForbidden)
	}

	payment, err := s.paymentRepo.FindPaymentByApplicationID(ctx, applicationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find payment in repository", slog.String("error", err.Error()), slog.Int64("application_id", applicationID))
		}
		return nil, err
	}
	return payment, nil
}
