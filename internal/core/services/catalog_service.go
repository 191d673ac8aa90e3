package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/govportal/citizen_services_backend/internal/apperrors"
	"github.com/govportal/citizen_services_backend/internal/core/domain"
	portsrepo "github.com/govportal/citizen_services_backend/internal/core/ports/repositories"
	portssvc "github.com/govportal/citizen_services_backend/internal/core/ports/services"
	"github.com/govportal/citizen_services_backend/internal/middleware"
)

// catalogService reads the catalog of offered government services.
type catalogService struct {
	serviceRepo portsrepo.ServiceRepository
}

// NewCatalogService creates a new catalogService.
func NewCatalogService(serviceRepo portsrepo.ServiceRepository) portssvc.CatalogSvcFacade {
	return &catalogService{serviceRepo: serviceRepo}
}

// ListServices returns the full catalog of offered services.
func (s *catalogService) ListServices(ctx context.Context) ([]domain.Service, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	services, err := s.serviceRepo.FindServices(ctx)
	if err != nil {
		logger.Error("Failed to list services from repository", slog.String("error", err.Error()))
		return nil, err
	}
	if services == nil {
		return []domain.Service{}, nil
	}
	return services, nil
}

// GetServiceByID retrieves a single catalog entry.
func (s *catalogService) GetServiceByID(ctx context.Context, serviceID int64) (*domain.Service, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	svc, err := s.serviceRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find service in repository", slog.String("error", err.Error()), slog.Int64("service_id", serviceID))
		}
		return nil, err
	}
	return svc, nil
}
