package response

import (
	"time"

	"salon-booking/internal/data/entity"
)

type AppointmentResponse struct {
	ID              string                   `json:"id"`
	ServiceID       string                   `json:"service_id"`
	CustomerName    string                   `json:"customer_name"`
	CustomerPhone   string                   `json:"customer_phone"`
	AppointmentDate string                   `json:"appointment_date"`
	AppointmentTime string                   `json:"appointment_time"`
	Status          entity.AppointmentStatus `json:"status"`
	StatusLabel     string                   `json:"status_label"`
	PaymentMethod   entity.PaymentMethod     `json:"payment_method"`
	PaymentLabel    string                   `json:"payment_label"`
	Notes           *string                  `json:"notes,omitempty"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

// BookingCreatedResponse is what the booking form gets back: the persisted
// appointment plus the pre-filled WhatsApp link the client opens.
type BookingCreatedResponse struct {
	Appointment AppointmentResponse `json:"appointment"`
	WhatsAppURL string              `json:"whatsapp_url"`
}

// ServiceSummary is the joined service attached to an admin row. Empty when
// the referenced service no longer exists.
type ServiceSummary struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
}

type AdminAppointmentResponse struct {
	AppointmentResponse
	Service              *ServiceSummary            `json:"service,omitempty"`
	AvailableTransitions []entity.AppointmentStatus `json:"available_transitions"`
}

// AppointmentStats is derived from the full loaded set, independent of the
// active status filter.
type AppointmentStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
}

type AdminAppointmentsResponse struct {
	Stats        AppointmentStats           `json:"stats"`
	Appointments []AdminAppointmentResponse `json:"appointments"`
}

// Helper converters
func AppointmentToResponse(appointment *entity.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:              appointment.ID.String(),
		ServiceID:       appointment.ServiceID.String(),
		CustomerName:    appointment.CustomerName,
		CustomerPhone:   appointment.CustomerPhone,
		AppointmentDate: appointment.AppointmentDate.Format("2006-01-02"),
		AppointmentTime: appointment.AppointmentTime,
		Status:          appointment.Status,
		StatusLabel:     appointment.Status.Label(),
		PaymentMethod:   appointment.PaymentMethod,
		PaymentLabel:    appointment.PaymentMethod.Label(),
		Notes:           appointment.Notes,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}
}

func ServiceToSummary(service *entity.Service) *ServiceSummary {
	if service == nil {
		return nil
	}
	return &ServiceSummary{
		ID:              service.ID.String(),
		Name:            service.Name,
		Price:           service.Price,
		DurationMinutes: service.DurationMinutes,
	}
}

func AppointmentToAdminResponse(appointment *entity.Appointment, service *entity.Service) AdminAppointmentResponse {
	return AdminAppointmentResponse{
		AppointmentResponse:  AppointmentToResponse(appointment),
		Service:              ServiceToSummary(service),
		AvailableTransitions: appointment.Status.Transitions(),
	}
}
