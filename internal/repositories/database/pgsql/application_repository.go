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

type PgxApplicationRepository struct {
	db *pgxpool.Pool
}

func newPgxApplicationRepository(db *pgxpool.Pool) portsrepo.ApplicationRepository {
	return &PgxApplicationRepository{db: db}
}

var _ portsrepo.ApplicationRepository = (*PgxApplicationRepository)(nil)

const applicationColumns = `application_id, user_id, citizen_profile_id, service_id, admin_id,
	submission_date, status, payment_status, service_specific_data`

func (r *PgxApplicationRepository) CreateApplication(ctx context.Context, app domain.Application) (*domain.Application, error) {
	m, err := mapping.ToModelApplication(app)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO applications (
			user_id, citizen_profile_id, service_id, submission_date,
			status, payment_status, service_specific_data
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING application_id;
	`
	err = r.db.QueryRow(ctx, query,
		m.UserID,
		m.CitizenProfileID,
		m.ServiceID,
		m.SubmissionDate,
		m.Status,
		m.PaymentStatus,
		m.ServiceSpecificData,
	).Scan(&m.ApplicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	created, err := mapping.ToDomainApplication(m)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *PgxApplicationRepository) FindApplicationByID(ctx context.Context, applicationID int64) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE application_id = $1;`

	m, err := scanApplication(r.db.QueryRow(ctx, query, applicationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find application by ID %d: %w", applicationID, err)
	}

	app, err := mapping.ToDomainApplication(m)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *PgxApplicationRepository) FindApplicationsByUserID(ctx context.Context, userID int64) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + `
		FROM applications
		WHERE user_id = $1
		ORDER BY application_id DESC;`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications for user %d: %w", userID, err)
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		m, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application row: %w", err)
		}
		app, err := mapping.ToDomainApplication(m)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating application rows: %w", err)
	}
	return apps, nil
}

// FindApplicationsForReview joins each application with its catalog service
// name and the applicant's profile. The applicant fields are read live from
// the profile, never stored on the application row.
func (r *PgxApplicationRepository) FindApplicationsForReview(ctx context.Context) ([]domain.ApplicationReviewItem, error) {
	query := `
		SELECT a.application_id, a.user_id, a.citizen_profile_id, a.service_id, a.admin_id,
			a.submission_date, a.status, a.payment_status, a.service_specific_data,
			s.service_name, p.name, p.fathers_name, p.mothers_name,
			p.date_of_birth, p.nid_number, p.profession
		FROM applications a
		JOIN services s ON s.service_id = a.service_id
		JOIN citizen_profiles p ON p.citizen_profile_id = a.citizen_profile_id
		ORDER BY a.application_id DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications for review: %w", err)
	}
	defer rows.Close()

	var items []domain.ApplicationReviewItem
	for rows.Next() {
		var m models.Application
		var serviceName, applicantName, nidNumber string
		var fathersName, mothersName, profession *string
		item := domain.ApplicationReviewItem{}
		err := rows.Scan(
			&m.ApplicationID,
			&m.UserID,
			&m.CitizenProfileID,
			&m.ServiceID,
			&m.AdminID,
			&m.SubmissionDate,
			&m.Status,
			&m.PaymentStatus,
			&m.ServiceSpecificData,
			&serviceName,
			&applicantName,
			&fathersName,
			&mothersName,
			&item.DateOfBirth,
			&nidNumber,
			&profession,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}

		app, err := mapping.ToDomainApplication(m)
		if err != nil {
			return nil, err
		}
		item.Application = app
		item.ServiceName = serviceName
		item.ApplicantName = applicantName
		item.NIDNumber = nidNumber
		if fathersName != nil {
			item.FathersName = *fathersName
		}
		if mothersName != nil {
			item.MothersName = *mothersName
		}
		if profession != nil {
			item.Profession = *profession
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating review rows: %w", err)
	}
	return items, nil
}

func (r *PgxApplicationRepository) UpdateReview(ctx context.Context, applicationID int64, status domain.ApplicationStatus, adminID int64) error {
	query := `
		UPDATE applications
		SET status = $2, admin_id = $3
		WHERE application_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, applicationID, string(status), adminID)
	if err != nil {
		return fmt.Errorf("failed to update review for application %d: %w", applicationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxApplicationRepository) MarkPaymentCompleted(ctx context.Context, applicationID int64) error {
	// Idempotent by construction: updating an already COMPLETED row changes
	// nothing, and the predicate still matches so no error is raised.
	query := `
		UPDATE applications
		SET payment_status = 'COMPLETED'
		WHERE application_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, applicationID)
	if err != nil {
		return fmt.Errorf("failed to mark payment completed for application %d: %w", applicationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxApplicationRepository) CountApplications(ctx context.Context) (domain.ApplicationStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'PENDING'),
			COUNT(*) FILTER (WHERE status = 'APPROVED'),
			COUNT(*) FILTER (WHERE status = 'REJECTED')
		FROM applications;
	`
	var stats domain.ApplicationStats
	err := r.db.QueryRow(ctx, query).Scan(
		&stats.Total,
		&stats.Pending,
		&stats.Approved,
		&stats.Rejected,
	)
	if err != nil {
		return domain.ApplicationStats{}, fmt.Errorf("failed to count applications: %w", err)
	}
	return stats, nil
}

func scanApplication(row pgx.Row) (models.Application, error) {
	var m models.Application
	err := row.Scan(
		&m.ApplicationID,
		&m.UserID,
		&m.CitizenProfileID,
		&m.ServiceID,
		&m.AdminID,
		&m.SubmissionDate,
		&m.Status,
		&m.PaymentStatus,
		&m.ServiceSpecificData,
	)
	return m, err
}
