package usecase

import (
	"context"
	"time"

	"salon-booking/internal/data/entity"
	"salon-booking/internal/data/repository"

	"github.com/google/uuid"
)

// Hand-rolled fakes over the repository interfaces. Function fields keep
// each test self-contained.

type fakeCategoryRepo struct {
	findAll func(ctx context.Context) ([]*entity.ServiceCategory, error)
}

func (f *fakeCategoryRepo) FindAll(ctx context.Context) ([]*entity.ServiceCategory, error) {
	if f.findAll == nil {
		return nil, nil
	}
	return f.findAll(ctx)
}

type fakeServiceRepo struct {
	findActive func(ctx context.Context) ([]*entity.Service, error)
	findByID   func(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	findByIDs  func(ctx context.Context, ids []uuid.UUID) ([]*entity.Service, error)
}

func (f *fakeServiceRepo) FindActive(ctx context.Context) ([]*entity.Service, error) {
	if f.findActive == nil {
		return nil, nil
	}
	return f.findActive(ctx)
}

func (f *fakeServiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	if f.findByID == nil {
		return nil, nil
	}
	return f.findByID(ctx, id)
}

func (f *fakeServiceRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Service, error) {
	if f.findByIDs == nil {
		return nil, nil
	}
	return f.findByIDs(ctx, ids)
}

type fakeAppointmentRepo struct {
	create       func(ctx context.Context, appointment *entity.Appointment) error
	findByID     func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	findAll      func(ctx context.Context) ([]*entity.Appointment, error)
	updateStatus func(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus, updatedAt time.Time) error
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appointment *entity.Appointment) error {
	if f.create == nil {
		return nil
	}
	return f.create(ctx, appointment)
}

func (f *fakeAppointmentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	if f.findByID == nil {
		return nil, nil
	}
	return f.findByID(ctx, id)
}

func (f *fakeAppointmentRepo) FindAll(ctx context.Context) ([]*entity.Appointment, error) {
	if f.findAll == nil {
		return nil, nil
	}
	return f.findAll(ctx)
}

func (f *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus, updatedAt time.Time) error {
	if f.updateStatus == nil {
		return nil
	}
	return f.updateStatus(ctx, id, status, updatedAt)
}

func newTestRepo(categories *fakeCategoryRepo, services *fakeServiceRepo, appointments *fakeAppointmentRepo) *repository.Repository {
	if categories == nil {
		categories = &fakeCategoryRepo{}
	}
	if services == nil {
		services = &fakeServiceRepo{}
	}
	if appointments == nil {
		appointments = &fakeAppointmentRepo{}
	}
	return &repository.Repository{
		Category:    categories,
		Service:     services,
		Appointment: appointments,
	}
}
