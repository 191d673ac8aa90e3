package mapping

import (
	"github.com/govportal/citizen_services_backend/internal/core/domain"
	"github.com/govportal/citizen_services_backend/internal/models"
)

// ToDomainService converts a models.Service to a domain.Service.
func ToDomainService(m models.Service) domain.Service {
	return domain.Service{
		ServiceID:   m.ServiceID,
		ServiceName: m.ServiceName,
		Description: derefString(m.Description),
		Fee:         m.Fee,
	}
}

// ToDomainServiceSlice converts a slice of models.Service to domain objects.
func ToDomainServiceSlice(ms []models.Service) []domain.Service {
	ds := make([]domain.Service, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainService(m)
	}
	return ds
}
