package domain

import "github.com/shopspring/decimal"

// Service is an offerable government service from the catalog, with its fee.
type Service struct {
	ServiceID   int64           `json:"serviceID"`
	ServiceName string          `json:"serviceName"`
	Description string          `json:"description,omitempty"`
	Fee         decimal.Decimal `json:"fee"`
}
