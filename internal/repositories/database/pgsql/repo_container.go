package pgsql

import (
	portsrepo "github.com/govportal/citizen_services_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		AdminRepo:       newPgxAdminRepository(dbPool),
		ProfileRepo:     newPgxProfileRepository(dbPool),
		ServiceRepo:     newPgxServiceRepository(dbPool),
		ApplicationRepo: newPgxApplicationRepository(dbPool),
		PaymentRepo:     newPgxPaymentRepository(dbPool),
		FeedbackRepo:    newPgxFeedbackRepository(dbPool),
	}
}
