package repositories

import (
	"context"

	"github.com/govportal/citizen_services_backend/internal/core/domain"
)

// PaymentRepository is the only writer of Payment rows and the only caller
// allowed to flip an application's payment status to COMPLETED.
type PaymentRepository interface {
	// CreatePaymentCompletingApplication inserts the payment row and marks the
	// linked application's payment status COMPLETED inside one database
	// transaction. The unique keys on (application_id) and (transaction_id)
	// are the authoritative duplicate guard; a violation surfaces as
	// apperrors.ErrConflict wrapped with the specific cause.
	CreatePaymentCompletingApplication(ctx context.Context, payment domain.Payment) (*domain.Payment, error)
	FindPaymentByApplicationID(ctx context.Context, applicationID int64) (*domain.Payment, error)
	FindPaymentByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error)
}
