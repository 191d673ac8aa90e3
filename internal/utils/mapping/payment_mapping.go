package mapping

import (
	"github.com/govportal/citizen_services_backend/internal/core/domain"
	"github.com/govportal/citizen_services_backend/internal/models"
)

// ToModelPayment converts a domain.Payment to its row shape.
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:     d.PaymentID,
		ApplicationID: d.ApplicationID,
		Amount:        d.Amount,
		PaymentMethod: string(d.Method),
		Status:        string(d.Status),
		TransactionID: d.TransactionID,
		PaymentDate:   d.PaymentDate,
	}
}

// ToDomainPayment converts a row back into a domain.Payment.
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:     m.PaymentID,
		ApplicationID: m.ApplicationID,
		Amount:        m.Amount,
		Method:        domain.PaymentMethod(m.PaymentMethod),
		Status:        domain.PaymentStatus(m.Status),
		TransactionID: m.TransactionID,
		PaymentDate:   m.PaymentDate,
	}
}
