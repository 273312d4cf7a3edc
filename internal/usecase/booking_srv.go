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
	"salon-booking/pkg/whatsapp"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// CreateAppointment persists one appointment with status forced to
	// pending and returns it together with the WhatsApp confirmation link.
	CreateAppointment(ctx context.Context, req *request.CreateAppointmentRequest) (*response.BookingCreatedResponse, error)
}

type bookingService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewBookingService(repo *repository.Repository, config *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateAppointment(ctx context.Context, req *request.CreateAppointmentRequest) (*response.BookingCreatedResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create appointment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service id: %w", err)
	}

	// The form only offers active services; a stale or fabricated selection
	// is rejected here.
	service, err := s.repo.Service.FindByID(ctx, serviceID)
	if err != nil {
		s.log.Error("Failed to check service",
			zap.Error(err),
			zap.String("service_id", req.ServiceID),
		)
		return nil, fmt.Errorf("check service: %w", err)
	}
	if service == nil || !service.IsActive {
		return nil, fmt.Errorf("service not found: %s", req.ServiceID)
	}

	appointmentDate, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, fmt.Errorf("invalid appointment date: %w", err)
	}

	if !entity.ValidTimeSlot(req.AppointmentTime) {
		return nil, fmt.Errorf("invalid appointment time: %s", req.AppointmentTime)
	}

	appointment := &entity.Appointment{
		ServiceID:       serviceID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		AppointmentDate: appointmentDate,
		AppointmentTime: req.AppointmentTime,
		// Whatever the client supplied, a new booking is always pending.
		Status:        entity.AppointmentStatusPending,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		Notes:         req.Notes,
	}
	appointment.ID = uuid.New()

	if err := s.repo.Appointment.Create(ctx, appointment); err != nil {
		s.log.Error("Failed to create appointment",
			zap.Error(err),
			zap.String("service_id", req.ServiceID),
		)
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	message := whatsapp.BookingMessage(
		appointment.CustomerName,
		service.Name,
		appointment.AppointmentDate,
		appointment.AppointmentTime,
		appointment.PaymentMethod.Label(),
	)

	s.log.Info("Appointment created",
		zap.String("appointment_id", appointment.ID.String()),
		zap.String("service", service.Name),
		zap.String("date", req.AppointmentDate),
		zap.String("time", req.AppointmentTime),
	)

	return &response.BookingCreatedResponse{
		Appointment: response.AppointmentToResponse(appointment),
		WhatsAppURL: whatsapp.Link(s.config.Salon.WhatsApp, message),
	}, nil
}
