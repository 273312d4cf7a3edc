package entity

import (
	"github.com/google/uuid"
)

type Service struct {
	BaseSimple
	CategoryID      uuid.UUID `db:"category_id"`
	Name            string    `db:"name"`
	Description     string    `db:"description"`
	DurationMinutes int       `db:"duration_minutes"`
	Price           float64   `db:"price"`
	ImageURL        *string   `db:"image_url"`
	IsActive        bool      `db:"is_active"`
}
