package repositories

import (
	"context"

	"github.com/govportal/citizen_services_backend/internal/core/domain"
)

// ApplicationRepository owns Application rows. Status and payment-status
// transitions go exclusively through this interface.
type ApplicationRepository interface {
	// CreateApplication inserts a new application and returns it with the
	// storage-assigned id. Foreign keys on user, profile and service make the
	// insert fail if any referenced row disappeared since the precondition
	// reads, so no half-written application can be produced.
	CreateApplication(ctx context.Context, app domain.Application) (*domain.Application, error)
	FindApplicationByID(ctx context.Context, applicationID int64) (*domain.Application, error)
	FindApplicationsByUserID(ctx context.Context, userID int64) ([]domain.Application, error)
	// FindApplicationsForReview returns all applications joined with their
	// service name and applicant profile snapshot, in storage order.
	FindApplicationsForReview(ctx context.Context) ([]domain.ApplicationReviewItem, error)
	// UpdateReview sets the review status and the deciding admin.
	UpdateReview(ctx context.Context, applicationID int64, status domain.ApplicationStatus, adminID int64) error
	// MarkPaymentCompleted flips payment_status to COMPLETED. It is a no-op
	// when the status is already COMPLETED.
	MarkPaymentCompleted(ctx context.Context, applicationID int64) error
	CountApplications(ctx context.Context) (domain.ApplicationStats, error)
}
