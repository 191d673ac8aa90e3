package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the database row shape for a payment record.
type Payment struct {
	PaymentID     int64           `db:"payment_id"`
	ApplicationID int64           `db:"application_id"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentMethod string          `db:"payment_method"`
	Status        string          `db:"status"`
	TransactionID string          `db:"transaction_id"`
	PaymentDate   time.Time       `db:"payment_date"`
}
