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

type PgxFeedbackRepository struct {
	db *pgxpool.Pool
}

func newPgxFeedbackRepository(db *pgxpool.Pool) portsrepo.FeedbackRepository {
	return &PgxFeedbackRepository{db: db}
}

var _ portsrepo.FeedbackRepository = (*PgxFeedbackRepository)(nil)

const feedbackColumns = `feedback_id, user_id, admin_id, feedback_type, subject, message,
	status, submission_date, updated_at`

func (r *PgxFeedbackRepository) SaveFeedback(ctx context.Context, fb domain.Feedback) (*domain.Feedback, error) {
	query := `
		INSERT INTO feedback (user_id, feedback_type, subject, message, status, submission_date, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING feedback_id;
	`
	var feedbackID int64
	err := r.db.QueryRow(ctx, query,
		fb.UserID,
		string(fb.FeedbackType),
		fb.Subject,
		fb.Message,
		string(fb.Status),
		fb.SubmissionDate,
		fb.UpdatedAt,
	).Scan(&feedbackID)
	if err != nil {
		return nil, fmt.Errorf("failed to save feedback: %w", err)
	}

	fb.FeedbackID = feedbackID
	return &fb, nil
}

func (r *PgxFeedbackRepository) FindAllFeedback(ctx context.Context) ([]domain.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback ORDER BY submission_date DESC;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer rows.Close()

	var ms []models.Feedback
	for rows.Next() {
		m, err := scanFeedback(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feedback row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating feedback rows: %w", err)
	}

	return mapping.ToDomainFeedbackSlice(ms), nil
}

func (r *PgxFeedbackRepository) FindFeedbackByID(ctx context.Context, feedbackID int64) (*domain.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE feedback_id = $1;`

	m, err := scanFeedback(r.db.QueryRow(ctx, query, feedbackID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find feedback by ID %d: %w", feedbackID, err)
	}

	fb := mapping.ToDomainFeedback(m)
	return &fb, nil
}

func (r *PgxFeedbackRepository) UpdateFeedbackStatus(ctx context.Context, feedbackID int64, status domain.FeedbackStatus, adminID int64) error {
	query := `
		UPDATE feedback
		SET status = $2, admin_id = $3, updated_at = NOW()
		WHERE feedback_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, feedbackID, string(status), adminID)
	if err != nil {
		return fmt.Errorf("failed to update feedback status for %d: %w", feedbackID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanFeedback(row pgx.Row) (models.Feedback, error) {
	var m models.Feedback
	err := row.Scan(
		&m.FeedbackID,
		&m.UserID,
		&m.AdminID,
		&m.FeedbackType,
		&m.Subject,
		&m.Message,
		&m.Status,
		&m.SubmissionDate,
		&m.UpdatedAt,
	)
	return m, err
}
