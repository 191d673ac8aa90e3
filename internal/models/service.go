package models

import "github.com/shopspring/decimal"

// Service is the database row shape for a catalog service.
type Service struct {
	ServiceID   int64           `db:"service_id"`
	ServiceName string          `db:"service_name"`
	Description *string         `db:"description"`
	Fee         decimal.Decimal `db:"fee"`
}
