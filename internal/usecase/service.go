package usecase

import (
	"salon-booking/internal/data/repository"
	"salon-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Catalog CatalogService
	Booking BookingService
	Admin   AdminService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Catalog: NewCatalogService(repo, log),
		Booking: NewBookingService(repo, config, log),
		Admin:   NewAdminService(repo, log),
	}
}
