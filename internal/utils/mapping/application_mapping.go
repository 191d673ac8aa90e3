package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/govportal/citizen_services_backend/internal/core/domain"
	"github.com/govportal/citizen_services_backend/internal/models"
)

// ToModelApplication converts a domain.Application to its row shape, encoding
// the service-specific data map as JSON bytes.
func ToModelApplication(d domain.Application) (models.Application, error) {
	data := d.ServiceSpecificData
	if data == nil {
		data = map[string]any{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return models.Application{}, fmt.Errorf("failed to encode service specific data: %w", err)
	}
	return models.Application{
		ApplicationID:       d.ApplicationID,
		UserID:              d.UserID,
		CitizenProfileID:    d.CitizenProfileID,
		ServiceID:           d.ServiceID,
		AdminID:             d.AdminID,
		SubmissionDate:      d.SubmissionDate,
		Status:              string(d.Status),
		PaymentStatus:       string(d.PaymentStatus),
		ServiceSpecificData: raw,
	}, nil
}

// ToDomainApplication converts a row back into a domain.Application.
func ToDomainApplication(m models.Application) (domain.Application, error) {
	data := map[string]any{}
	if len(m.ServiceSpecificData) > 0 {
		if err := json.Unmarshal(m.ServiceSpecificData, &data); err != nil {
			return domain.Application{}, fmt.Errorf("failed to decode service specific data for application %d: %w", m.ApplicationID, err)
		}
	}
	return domain.Application{
		ApplicationID:       m.ApplicationID,
		UserID:              m.UserID,
		CitizenProfileID:    m.CitizenProfileID,
		ServiceID:           m.ServiceID,
		AdminID:             m.AdminID,
		SubmissionDate:      m.SubmissionDate,
		Status:              domain.ApplicationStatus(m.Status),
		PaymentStatus:       domain.PaymentState(m.PaymentStatus),
		ServiceSpecificData: data,
	}, nil
}
