package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/govportal/citizen_services_backend/internal/apperrors"
	"github.com/govportal/citizen_services_backend/internal/core/domain"
	portsrepo "github.com/govportal/citizen_services_backend/internal/core/ports/repositories"
	"github.com/govportal/citizen_services_backend/internal/models"
	"github.com/govportal/citizen_services_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(db *pgxpool.Pool) portsrepo.PaymentRepository {
	return &PgxPaymentRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.PaymentRepository = (*PgxPaymentRepository)(nil)

// CreatePaymentCompletingApplication inserts the payment row and flips the
// linked application's payment status inside one transaction, so no payment
// can exist beside an application still marked unpaid. The unique keys on
// (application_id) and (transaction_id) are the authoritative duplicate guard.
func (r *PgxPaymentRepository) CreatePaymentCompletingApplication(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	m := mapping.ToModelPayment(payment)

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	insertQuery := `
		INSERT INTO payments (
			application_id, amount, payment_method, status, transaction_id, payment_date
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING payment_id;
	`
	err = tx.QueryRow(ctx, insertQuery,
		m.ApplicationID,
		m.Amount,
		m.PaymentMethod,
		m.Status,
		m.TransactionID,
		m.PaymentDate,
	).Scan(&m.PaymentID)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			switch constraint {
			case "payments_transaction_id_key":
				return nil, apperrors.NewAppError(409, "this transaction ID was already used", apperrors.ErrConflict)
			default:
				return nil, apperrors.NewAppError(409, "payment already exists for this application", apperrors.ErrConflict)
			}
		}
		return nil, fmt.Errorf("failed to insert payment: %w", err)
	}

	updateQuery := `
		UPDATE applications
		SET payment_status = 'COMPLETED'
		WHERE application_id = $1;
	`
	tag, err := tx.Exec(ctx, updateQuery, m.ApplicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark application paid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	created := mapping.ToDomainPayment(m)
	return &created, nil
}

func (r *PgxPaymentRepository) FindPaymentByApplicationID(ctx context.Context, applicationID int64) (*domain.Payment, error) {
	query := `
		SELECT payment_id, application_id, amount, payment_method, status, transaction_id, payment_date
		FROM payments
		WHERE application_id = $1;
	`
	m, err := scanPayment(r.Pool.QueryRow(ctx, query, applicationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment for application %d: %w", applicationID, err)
	}

	payment := mapping.ToDomainPayment(m)
	return &payment, nil
}

func (r *PgxPaymentRepository) FindPaymentByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error) {
	query := `
		SELECT payment_id, application_id, amount, payment_method, status, transaction_id, payment_date
		FROM payments
		WHERE transaction_id = $1;
	`
	m, err := scanPayment(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment by transaction ID: %w", err)
	}

	payment := mapping.ToDomainPayment(m)
	return &payment, nil
}

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.ApplicationID,
		&m.Amount,
		&m.PaymentMethod,
		&m.Status,
		&m.TransactionID,
		&m.PaymentDate,
	)
	return m, err
}
