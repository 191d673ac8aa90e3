package services

import (
	"context"

	"github.com/govportal/citizen_services_backend/internal/core/domain"
)

// CatalogSvcFacade defines read access to the offered service catalog.
type CatalogSvcFacade interface {
	// ListServices returns the full catalog of offered services.
	ListServices(ctx context.Context) ([]domain.Service, error)

	// GetServiceByID retrieves a single catalog entry.
	GetServiceByID(ctx context.Context, serviceID int64) (*domain.Service, error)
}
