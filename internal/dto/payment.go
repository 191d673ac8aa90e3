package dto

import (
	"time"

	"github.com/govportal/citizen_services_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProcessPaymentRequest submits a confirmed gateway payment for an application.
type ProcessPaymentRequest struct {
	ApplicationID int64           `json:"applicationId" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,oneof=BKASH NAGAD ROCKET"`
	TransactionID string          `json:"transactionId" binding:"required"`
}

// PaymentResponse is the API shape of a payment record.
type PaymentResponse struct {
	PaymentID     int64           `json:"paymentId"`
	ApplicationID int64           `json:"applicationId"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        string          `json:"status"`
	TransactionID string          `json:"transactionId"`
	PaymentDate   time.Time       `json:"paymentDate"`
}

// ToPaymentResponse converts a domain.Payment to its API shape.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		ApplicationID: p.ApplicationID,
		Amount:        p.Amount,
		PaymentMethod: string(p.Method),
		Status:        string(p.Status),
		TransactionID: p.TransactionID,
		PaymentDate:   p.PaymentDate,
	}
}
