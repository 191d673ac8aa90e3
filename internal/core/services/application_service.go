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

// applicationService is the registry for service applications. All status and
// payment-status transitions flow through it.
type applicationService struct {
	applicationRepo portsrepo.ApplicationRepository
	profileRepo     portsrepo.ProfileRepository
	serviceRepo     portsrepo.ServiceRepository
}

// NewApplicationService creates a new applicationService.
func NewApplicationService(applicationRepo portsrepo.ApplicationRepository, profileRepo portsrepo.ProfileRepository, serviceRepo portsrepo.ServiceRepository) portssvc.ApplicationSvcFacade {
	return &applicationService{
		applicationRepo: applicationRepo,
		profileRepo:     profileRepo,
		serviceRepo:     serviceRepo,
	}
}

// SubmitApplication creates a new PENDING application for a catalog service.
// The submitting user must have a citizen profile, and the service must exist.
func (s *applicationService) SubmitApplication(ctx context.Context, userID int64, req dto.SubmitApplicationRequest) (*domain.Application, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	profile, err := s.profileRepo.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAppError(412, "a citizen profile is required before submitting an application", apperrors.ErrPreconditionFailed)
		}
		logger.Error("Failed to resolve profile for submission", slog.String("error", err.Error()), slog.Int64("user_id", userID))
		return nil, err
	}

	if _, err := s.serviceRepo.FindServiceByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("service not found")
		}
		logger.Error("Failed to resolve service for submission", slog.String("error", err.Error()), slog.Int64("service_id", req.ServiceID))
		return nil, err
	}

	app := domain.Application{
		UserID:              userID,
		CitizenProfileID:    profile.ProfileID,
		ServiceID:           req.ServiceID,
		SubmissionDate:      time.Now().UTC(),
		Status:              domain.ApplicationPending,
		PaymentStatus:       domain.PaymentStatePending,
		ServiceSpecificData: req.ServiceSpecificData,
	}

	created, err := s.applicationRepo.CreateApplication(ctx, app)
	if err != nil {
		logger.Error("Failed to create application in repository", slog.String("error", err.Error()), slog.Int64("user_id", userID))
		return nil, err
	}

	logger.Info("Application submitted", slog.Int64("application_id", created.ApplicationID), slog.Int64("user_id", userID), slog.Int64("service_id", req.ServiceID))
	return created, nil
}

// GetApplicationForCitizen retrieves one application, enforcing ownership.
func (s *applicationService) GetApplicationForCitizen(ctx context.Context, applicationID, userID int64) (*domain.Application, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	app, err := s.applicationRepo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find application in repository", slog.String("error", err.Error()), slog.Int64("application_id", applicationID))
		}
		return nil, err
	}

	if app.UserID != userID {
		logger.Warn("Application access denied", slog.Int64("application_id", applicationID), slog.Int64("user_id", userID))
		return nil, apperrors.NewAppError(403, "you do not have access to this application", apperrors.ErrForbidden)
	}

	return app, nil
}

// ListApplicationsForCitizen returns the requesting user's applications with
// the catalog service name resolved.
func (s *applicationService) ListApplicationsForCitizen(ctx context.Context, userID int64) ([]dto.ApplicationListItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	apps, err := s.applicationRepo.FindApplicationsByUserID(ctx, userID)
	if err != nil {
		logger.Error("Failed to list applications from repository", slog.String("error", err.Error()), slog.Int64("user_id", userID))
		return nil, err
	}

	services, err := s.serviceRepo.FindServices(ctx)
	if err != nil {
		logger.Error("Failed to list services while resolving names", slog.String("error", err.Error()))
		return nil, err
	}
	namesByID := make(map[int64]string, len(services))
	for _, svc := range services {
		namesByID[svc.ServiceID] = svc.ServiceName
	}

	items := make([]dto.ApplicationListItem, 0, len(apps))
	for i := range apps {
		resp := dto.ToApplicationResponse(&apps[i])
		items = append(items, dto.ApplicationListItem{
			ApplicationID:       resp.ApplicationID,
			ServiceName:         namesByID[apps[i].ServiceID],
			SubmissionDate:      resp.SubmissionDate,
			Status:              resp.Status,
			PaymentStatus:       resp.PaymentStatus,
			ServiceSpecificData: resp.ServiceSpecificData,
		})
	}
	return items, nil
}

// MarkPaymentCompleted flips the application's payment state to COMPLETED.
// Calling it when the payment is already complete is a no-op.
func (s *applicationService) MarkPaymentCompleted(ctx context.Context, applicationID int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.applicationRepo.FindApplicationByID(ctx, applicationID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find application before payment completion", slog.String("error", err.Error()), slog.Int64("application_id", applicationID))
		}
		return err
	}

	if err := s.applicationRepo.MarkPaymentCompleted(ctx, applicationID); err != nil {
		logger.Error("Failed to mark payment completed in repository", slog.String("error", err.Error()), slog.Int64("application_id", applicationID))
		return err
	}

	logger.Info("Application payment marked completed", slog.Int64("application_id", applicationID))
	return nil
}

// ListAllApplications returns every application with applicant details.
func (s *applicationService) ListAllApplications(ctx context.Context) ([]domain.ApplicationReviewItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	items, err := s.applicationRepo.FindApplicationsForReview(ctx)
	if err != nil {
		logger.Error("Failed to list applications for review", slog.String("error", err.Error()))
		return nil, err
	}
	if items == nil {
		return []domain.ApplicationReviewItem{}, nil
	}
	return items, nil
}

// ApproveApplication moves an application to APPROVED. The fee must have been
// paid first.
func (s *applicationService) ApproveApplication(ctx context.Context, applicationID, adminID int64) (*domain.Application, error) {
	return s.review(ctx, applicationID, adminID, domain.ApplicationApproved)
}

// RejectApplication moves an application to REJECTED.
func (s *applicationService) RejectApplication(ctx context.Context, applicationID, adminID int64) (*domain.Application, error) {
	return s.review(ctx, applicationID, adminID, domain.ApplicationRejected)
}

func (s *applicationService) review(ctx context.Context, applicationID, adminID int64, status domain.ApplicationStatus) (*domain.Application, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	app, err := s.applicationRepo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find application for review", slog.String("error", err.Error()), slog.Int64("application_id", applicationID))
		}
		return nil, err
	}

	if status == domain.ApplicationApproved && !app.CanApprove() {
		return nil, apperrors.NewAppError(412, "cannot approve an application with a pending payment", apperrors.ErrPreconditionFailed)
	}

	if err := s.applicationRepo.UpdateReview(ctx, applicationID, status, adminID); err != nil {
		logger.Error("Failed to update review status in repository", slog.String("error", err.Error()), slog.Int64("application_id", applicationID))
		return nil, err
	}

	app.Status = status
	app.AdminID = &adminID

	logger.Info("Application reviewed", slog.Int64("application_id", applicationID), slog.Int64("admin_id", adminID), slog.String("status", string(status)))
	return app, nil
}

// GetApplicationStats returns dashboard counts by status.
func (s *applicationService) GetApplicationStats(ctx context.Context) (*domain.ApplicationStats, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	stats, err := s.applicationRepo.CountApplications(ctx)
	if err != nil {
		logger.Error("Failed to count applications", slog.String("error", err.Error()))
		return nil, err
	}
	return &stats, nil
}
