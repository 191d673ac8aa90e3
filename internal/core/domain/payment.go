package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod enumerates the external payment channels.
type PaymentMethod string

const (
	MethodBkash  PaymentMethod = "BKASH"
	MethodNagad  PaymentMethod = "NAGAD"
	MethodRocket PaymentMethod = "ROCKET"
)

// PaymentStatus is the status of a payment record. FAILED is representable
// but never produced by the current processing contract.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
)

// Payment records a payment attempt against an application. An application has
// at most one payment ever, and TransactionID is unique across the whole
// ledger. Payments are immutable once created.
type Payment struct {
	PaymentID     int64           `json:"paymentID"`
	ApplicationID int64           `json:"applicationID"`
	Amount        decimal.Decimal `json:"amount"`
	Method        PaymentMethod   `json:"paymentMethod"`
	Status        PaymentStatus   `json:"status"`
	TransactionID string          `json:"transactionID"`
	PaymentDate   time.Time       `json:"paymentDate"`
}
