package repository

import (
	"context"
	"fmt"

	"salon-booking/internal/data/entity"
	"salon-booking/pkg/database"

	"go.uber.org/zap"
)

type CategoryRepository interface {
	// FindAll returns every category ascending by display_order. Ties keep
	// store order; display_order is not unique.
	FindAll(ctx context.Context) ([]*entity.ServiceCategory, error)
}

type categoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCategoryRepository(db database.PgxIface, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "category")),
	}
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.ServiceCategory, error) {
	query := `
		SELECT id, name, icon, display_order, created_at
		FROM service_categories
		ORDER BY display_order
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all categories", zap.Error(err))
		return nil, fmt.Errorf("find categories: %w", err)
	}
	defer rows.Close()

	var categories []*entity.ServiceCategory
	for rows.Next() {
		var category entity.ServiceCategory
		err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Icon,
			&category.DisplayOrder,
			&category.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan category row", zap.Error(err))
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}

	return categories, nil
}
