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

type PgxProfileRepository struct {
	db *pgxpool.Pool
}

func newPgxProfileRepository(db *pgxpool.Pool) portsrepo.ProfileRepository {
	return &PgxProfileRepository{db: db}
}

var _ portsrepo.ProfileRepository = (*PgxProfileRepository)(nil)

func (r *PgxProfileRepository) SaveProfile(ctx context.Context, profile domain.CitizenProfile) (*domain.CitizenProfile, error) {
	m := mapping.ToModelProfile(profile)
	query := `
		INSERT INTO citizen_profiles (
			user_id, name, fathers_name, mothers_name, date_of_birth,
			nid_number, gender, religion, current_address, permanent_address, profession
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING citizen_profile_id;
	`
	err := r.db.QueryRow(ctx, query,
		m.UserID,
		m.Name,
		m.FathersName,
		m.MothersName,
		m.DateOfBirth,
		m.NIDNumber,
		m.Gender,
		m.Religion,
		m.CurrentAddress,
		m.PermanentAddress,
		m.Profession,
	).Scan(&m.ProfileID)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			switch constraint {
			case "citizen_profiles_nid_number_key":
				return nil, apperrors.NewAppError(409, "NID number is already registered", apperrors.ErrConflict)
			default:
				return nil, apperrors.NewAppError(409, "a profile already exists for this user", apperrors.ErrConflict)
			}
		}
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	domainProfile := mapping.ToDomainProfile(m)
	return &domainProfile, nil
}

func (r *PgxProfileRepository) FindProfileByUserID(ctx context.Context, userID int64) (*domain.CitizenProfile, error) {
	query := `
		SELECT citizen_profile_id, user_id, name, fathers_name, mothers_name,
			date_of_birth, nid_number, gender, religion, current_address,
			permanent_address, profession
		FROM citizen_profiles
		WHERE user_id = $1;
	`
	var m models.CitizenProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&m.ProfileID,
		&m.UserID,
		&m.Name,
		&m.FathersName,
		&m.MothersName,
		&m.DateOfBirth,
		&m.NIDNumber,
		&m.Gender,
		&m.Religion,
		&m.CurrentAddress,
		&m.PermanentAddress,
		&m.Profession,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find profile for user %d: %w", userID, err)
	}

	domainProfile := mapping.ToDomainProfile(m)
	return &domainProfile, nil
}
