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

type PgxServiceRepository struct {
	db *pgxpool.Pool
}

func newPgxServiceRepository(db *pgxpool.Pool) portsrepo.ServiceRepository {
	return &PgxServiceRepository{db: db}
}

var _ portsrepo.ServiceRepository = (*PgxServiceRepository)(nil)

func (r *PgxServiceRepository) FindServiceByID(ctx context.Context, serviceID int64) (*domain.Service, error) {
	query := `
		SELECT service_id, service_name, description, fee
		FROM services
		WHERE service_id = $1;
	`
	var m models.Service
	err := r.db.QueryRow(ctx, query, serviceID).Scan(
		&m.ServiceID,
		&m.ServiceName,
		&m.Description,
		&m.Fee,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find service by ID %d: %w", serviceID, err)
	}

	domainService := mapping.ToDomainService(m)
	return &domainService, nil
}

func (r *PgxServiceRepository) FindServices(ctx context.Context) ([]domain.Service, error) {
	query := `
		SELECT service_id, service_name, description, fee
		FROM services
		ORDER BY service_id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query services: %w", err)
	}
	defer rows.Close()

	var ms []models.Service
	for rows.Next() {
		var m models.Service
		if err := rows.Scan(&m.ServiceID, &m.ServiceName, &m.Description, &m.Fee); err != nil {
			return nil, fmt.Errorf("failed to scan service row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating service rows: %w", err)
	}

	return mapping.ToDomainServiceSlice(ms), nil
}
