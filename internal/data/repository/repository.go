package repository

import (
	"salon-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Category    CategoryRepository
	Service     ServiceRepository
	Appointment AppointmentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Category:    NewCategoryRepository(db, log),
		Service:     NewServiceRepository(db, log),
		Appointment: NewAppointmentRepository(db, log),
	}
}
