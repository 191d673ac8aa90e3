package services

import (
	"context"

	"github.com/govportal/citizen_services_backend/internal/core/domain"
	"github.com/govportal/citizen_services_backend/internal/dto"
)

// ApplicationReaderSvc defines citizen-facing read operations on applications.
type ApplicationReaderSvc interface {
	// GetApplicationForCitizen retrieves one application, enforcing ownership.
	GetApplicationForCitizen(ctx context.Context, applicationID, userID int64) (*domain.Application, error)

	// ListApplicationsForCitizen returns the requesting user's applications
	// with the catalog service name resolved.
	ListApplicationsForCitizen(ctx context.Context, userID int64) ([]dto.ApplicationListItem, error)
}

// ApplicationWriterSvc defines citizen-facing write operations on applications.
type ApplicationWriterSvc interface {
	// SubmitApplication creates a new PENDING application for a catalog service.
	SubmitApplication(ctx context.Context, userID int64, req dto.SubmitApplicationRequest) (*domain.Application, error)
}

// ApplicationReviewSvc defines the admin review operations.
type ApplicationReviewSvc interface {
	// ListAllApplications returns every application with applicant details.
	ListAllApplications(ctx context.Context) ([]domain.ApplicationReviewItem, error)

	// ApproveApplication moves an application to APPROVED. The fee must have
	// been paid first.
	ApproveApplication(ctx context.Context, applicationID, adminID int64) (*domain.Application, error)

	// RejectApplication moves an application to REJECTED.
	RejectApplication(ctx context.Context, applicationID, adminID int64) (*domain.Application, error)

	// GetApplicationStats returns dashboard counts by status.
	GetApplicationStats(ctx context.Context) (*domain.ApplicationStats, error)
}

// ApplicationSvcFacade combines all application service interfaces.
type ApplicationSvcFacade interface {
	ApplicationReaderSvc
	ApplicationWriterSvc
	ApplicationReviewSvc

	// MarkPaymentCompleted flips the application's payment state to COMPLETED.
	// Calling it when the payment is already complete is a no-op.
	MarkPaymentCompleted(ctx context.Context, applicationID int64) error
}
