package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/govportal/citizen_services_backend/internal/core/domain"
)

func TestApplicationStatusIsTerminal(t *testing.T) {
	tests := []struct {
		name     string
		status   domain.ApplicationStatus
		terminal bool
	}{
		{"Pending", domain.ApplicationPending, false},
		{"Approved", domain.ApplicationApproved, true},
		{"Rejected", domain.ApplicationRejected, true},
		{"Unknown", domain.ApplicationStatus("WEIRD"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.terminal, tt.status.IsTerminal())
		})
	}
}

func TestApplicationCanApprove(t *testing.T) {
	tests := []struct {
		name          string
		paymentStatus domain.PaymentState
		want          bool
	}{
		{"PaymentPending", domain.PaymentStatePending, false},
		{"PaymentCompleted", domain.PaymentStateCompleted, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := domain.Application{PaymentStatus: tt.paymentStatus}
			assert.Equal(t, tt.want, app.CanApprove())
		})
	}
}
