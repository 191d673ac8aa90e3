package dto

import (
	"github.com/govportal/citizen_services_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ServiceResponse is the API shape of a catalog entry.
type ServiceResponse struct {
	ServiceID   int64           `json:"serviceId"`
	ServiceName string          `json:"serviceName"`
	Description string          `json:"description,omitempty"`
	Fee         decimal.Decimal `json:"fee"`
}

// ToServiceResponse converts a domain.Service to its API shape.
func ToServiceResponse(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ServiceID:   s.ServiceID,
		ServiceName: s.ServiceName,
		Description: s.Description,
		Fee:         s.Fee,
	}
}

// ToServiceResponses converts a slice of catalog entries.
func ToServiceResponses(services []domain.Service) []ServiceResponse {
	out := make([]ServiceResponse, len(services))
	for i := range services {
		out[i] = ToServiceResponse(&services[i])
	}
	return out
}
