package usecase

import (
	"context"
	"fmt"
	"time"

	"salon-booking/internal/data/entity"
	"salon-booking/internal/data/repository"
	"salon-booking/internal/dto/request"
	"salon-booking/internal/dto/response"
	"salon-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminService interface {
	// ListAppointments loads the full history with joined services and
	// aggregate counters. Load errors are logged and swallowed; the list
	// degrades to empty. The status filter restricts the returned rows
	// only, never the counters.
	ListAppointments(ctx context.Context, statusFilter string) *response.AdminAppointmentsResponse
	// UpdateStatus applies one of the allowed transitions
	// (pending→confirmed, pending→cancelled, confirmed→completed) and
	// refreshes the row's updated timestamp.
	UpdateStatus(ctx context.Context, appointmentID string, req *request.UpdateAppointmentStatusRequest) (*response.AdminAppointmentResponse, error)
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) ListAppointments(ctx context.Context, statusFilter string) *response.AdminAppointmentsResponse {
	empty := &response.AdminAppointmentsResponse{
		Appointments: []response.AdminAppointmentResponse{},
	}

	appointments, err := s.repo.Appointment.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load appointments", zap.Error(err))
		return empty
	}

	// The store has no join; referenced services are fetched as a set and
	// matched in memory. A missing service leaves the row's service fields
	// empty rather than failing the whole list.
	serviceByID := s.loadReferencedServices(ctx, appointments)

	stats := response.AppointmentStats{Total: len(appointments)}
	for _, appointment := range appointments {
		switch appointment.Status {
		case entity.AppointmentStatusPending:
			stats.Pending++
		case entity.AppointmentStatusConfirmed:
			stats.Confirmed++
		case entity.AppointmentStatusCompleted:
			stats.Completed++
		}
	}

	filter := entity.AppointmentStatus(statusFilter)
	if statusFilter != "" && statusFilter != "all" && !filter.Valid() {
		s.log.Warn("Invalid status filter, showing all", zap.String("status", statusFilter))
	}

	rows := []response.AdminAppointmentResponse{}
	for _, appointment := range appointments {
		if filter.Valid() && appointment.Status != filter {
			continue
		}
		rows = append(rows, response.AppointmentToAdminResponse(appointment, serviceByID[appointment.ServiceID]))
	}

	s.log.Info("Appointments listed",
		zap.Int("total", stats.Total),
		zap.Int("shown", len(rows)),
		zap.String("status_filter", statusFilter),
	)

	return &response.AdminAppointmentsResponse{
		Stats:        stats,
		Appointments: rows,
	}
}

func (s *adminService) UpdateStatus(ctx context.Context, appointmentID string, req *request.UpdateAppointmentStatusRequest) (*response.AdminAppointmentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(appointmentID)
	if err != nil {
		return nil, fmt.Errorf("invalid appointment id: %w", err)
	}

	next := entity.AppointmentStatus(req.Status)

	appointment, err := s.repo.Appointment.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load appointment",
			zap.Error(err),
			zap.String("appointment_id", appointmentID),
		)
		return nil, fmt.Errorf("load appointment: %w", err)
	}
	if appointment == nil {
		return nil, fmt.Errorf("appointment %s not found", appointmentID)
	}

	if !appointment.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("cannot transition from %s to %s", appointment.Status, next)
	}

	if err := s.repo.Appointment.UpdateStatus(ctx, id, next, time.Now().UTC()); err != nil {
		s.log.Error("Failed to update appointment status",
			zap.Error(err),
			zap.String("appointment_id", appointmentID),
			zap.String("status", req.Status),
		)
		return nil, fmt.Errorf("update status: %w", err)
	}

	// Only the status flips in the returned row; updated_at refreshes on
	// the next full load.
	appointment.Status = next

	s.log.Info("Appointment status updated",
		zap.String("appointment_id", appointmentID),
		zap.String("status", req.Status),
	)

	row := response.AppointmentToAdminResponse(appointment, nil)
	return &row, nil
}

func (s *adminService) loadReferencedServices(ctx context.Context, appointments []*entity.Appointment) map[uuid.UUID]*entity.Service {
	seen := make(map[uuid.UUID]bool, len(appointments))
	var ids []uuid.UUID
	for _, appointment := range appointments {
		if !seen[appointment.ServiceID] {
			seen[appointment.ServiceID] = true
			ids = append(ids, appointment.ServiceID)
		}
	}

	serviceByID := make(map[uuid.UUID]*entity.Service, len(ids))
	services, err := s.repo.Service.FindByIDs(ctx, ids)
	if err != nil {
		s.log.Warn("Failed to load services for appointments", zap.Error(err))
		return serviceByID
	}
	for _, service := range services {
		serviceByID[service.ID] = service
	}
	return serviceByID
}
