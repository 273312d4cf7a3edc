package repository

import (
	"context"
	"fmt"

	"salon-booking/internal/data/entity"
	"salon-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ServiceRepository interface {
	// FindActive returns every service with the is_active flag set.
	FindActive(ctx context.Context) ([]*entity.Service, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	// FindByIDs resolves a set of service references in one query.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Service, error)
}

type serviceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewServiceRepository(db database.PgxIface, log *zap.Logger) ServiceRepository {
	return &serviceRepository{
		db:  db,
		log: log.With(zap.String("repository", "service")),
	}
}

const serviceColumns = `id, category_id, name, description, duration_minutes, price, image_url, is_active, created_at`

func (r *serviceRepository) FindActive(ctx context.Context) ([]*entity.Service, error) {
	query := `
		SELECT ` + serviceColumns + `
		FROM services
		WHERE is_active = true
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find active services", zap.Error(err))
		return nil, fmt.Errorf("find active services: %w", err)
	}
	defer rows.Close()

	return r.scanServices(rows)
}

func (r *serviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	query := `
		SELECT ` + serviceColumns + `
		FROM services
		WHERE id = $1
	`

	var service entity.Service
	err := r.db.QueryRow(ctx, query, id).Scan(
		&service.ID,
		&service.CategoryID,
		&service.Name,
		&service.Description,
		&service.DurationMinutes,
		&service.Price,
		&service.ImageURL,
		&service.IsActive,
		&service.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find service by ID",
			zap.Error(err),
			zap.String("service_id", id.String()),
		)
		return nil, fmt.Errorf("find service by ID %s: %w", id.String(), err)
	}

	return &service, nil
}

func (r *serviceRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Service, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT ` + serviceColumns + `
		FROM services
		WHERE id = ANY($1)
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to find services by IDs",
			zap.Error(err),
			zap.Int("count", len(ids)),
		)
		return nil, fmt.Errorf("find services by IDs: %w", err)
	}
	defer rows.Close()

	return r.scanServices(rows)
}

func (r *serviceRepository) scanServices(rows pgx.Rows) ([]*entity.Service, error) {
	var services []*entity.Service
	for rows.Next() {
		var service entity.Service
		err := rows.Scan(
			&service.ID,
			&service.CategoryID,
			&service.Name,
			&service.Description,
			&service.DurationMinutes,
			&service.Price,
			&service.ImageURL,
			&service.IsActive,
			&service.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan service row", zap.Error(err))
			return nil, fmt.Errorf("scan service row: %w", err)
		}
		services = append(services, &service)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate service rows: %w", err)
	}

	return services, nil
}
