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

type PgxAdminRepository struct {
	db *pgxpool.Pool
}

func newPgxAdminRepository(db *pgxpool.Pool) portsrepo.AdminRepository {
	return &PgxAdminRepository{db: db}
}

var _ portsrepo.AdminRepository = (*PgxAdminRepository)(nil)

func (r *PgxAdminRepository) FindAdminByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	query := `
		SELECT admin_id, username, password_hash, created_at
		FROM admins
		WHERE username = $1;
	`
	var m models.Admin
	err := r.db.QueryRow(ctx, query, username).Scan(
		&m.AdminID,
		&m.Username,
		&m.PasswordHash,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find admin by username: %w", err)
	}

	domainAdmin := mapping.ToDomainAdmin(m)
	return &domainAdmin, nil
}
