package repositories

import (
	"context"

	"github.com/govportal/citizen_services_backend/internal/core/domain"
)

// ServiceRepository reads the catalog of offerable services.
type ServiceRepository interface {
	FindServiceByID(ctx context.Context, serviceID int64) (*domain.Service, error)
	FindServices(ctx context.Context) ([]domain.Service, error)
}
