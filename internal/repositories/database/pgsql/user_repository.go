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

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepository
var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	modelUser := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (email, phone, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id;
	`
	err := r.db.QueryRow(ctx, query,
		modelUser.Email,
		modelUser.Phone,
		modelUser.PasswordHash,
		modelUser.CreatedAt,
	).Scan(&modelUser.UserID)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return nil, apperrors.NewAppError(409, "email is already registered", apperrors.ErrConflict)
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	domainUser := mapping.ToDomainUser(modelUser)
	return &domainUser, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	query := `
		SELECT user_id, email, phone, password_hash, created_at, deleted_at
		FROM users
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	modelUser, err := r.scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %d: %w", userID, err)
	}

	domainUser := mapping.ToDomainUser(modelUser)
	return &domainUser, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT user_id, email, phone, password_hash, created_at, deleted_at
		FROM users
		WHERE email = $1 AND deleted_at IS NULL;
	`
	modelUser, err := r.scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	domainUser := mapping.ToDomainUser(modelUser)
	return &domainUser, nil
}

func (r *PgxUserRepository) scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Email,
		&m.Phone,
		&m.PasswordHash,
		&m.CreatedAt,
		&m.DeletedAt,
	)
	return m, err
}
