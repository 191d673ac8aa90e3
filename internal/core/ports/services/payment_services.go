package services

import (
	"context"

	"github.com/govportal/citizen_services_backend/internal/core/domain"
	"github.com/govportal/citizen_services_backend/internal/dto"
)

// PaymentSvcFacade defines the fee-payment ledger operations.
type PaymentSvcFacade interface {
	// ProcessPayment records a confirmed gateway payment against an
	// application and marks the application's fee as paid. At most one
	// payment may ever succeed per application, and each gateway
	// transaction reference is accepted at most once.
	ProcessPayment(ctx context.Context, userID int64, req dto.ProcessPaymentRequest) (*domain.Payment, error)

	// GetPaymentByApplicationID retrieves the payment recorded for an
	// application, enforcing ownership.
	GetPaymentByApplicationID(ctx context.Context, applicationID, userID int64) (*domain.Payment, error)
}
