package entity

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Transitions returns the statuses reachable from s. Completed and
// cancelled are terminal.
func (s AppointmentStatus) Transitions() []AppointmentStatus {
	switch s {
	case AppointmentStatusPending:
		return []AppointmentStatus{AppointmentStatusConfirmed, AppointmentStatusCancelled}
	case AppointmentStatusConfirmed:
		return []AppointmentStatus{AppointmentStatusCompleted}
	default:
		return nil
	}
}

func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, t := range s.Transitions() {
		if t == next {
			return true
		}
	}
	return false
}

// Label returns the pt-BR display label.
func (s AppointmentStatus) Label() string {
	switch s {
	case AppointmentStatusPending:
		return "Pendente"
	case AppointmentStatusConfirmed:
		return "Confirmado"
	case AppointmentStatusCompleted:
		return "Concluído"
	case AppointmentStatusCancelled:
		return "Cancelado"
	default:
		return string(s)
	}
}

type PaymentMethod string

const (
	PaymentMethodPix  PaymentMethod = "pix"
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCash PaymentMethod = "cash"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodPix, PaymentMethodCard, PaymentMethodCash:
		return true
	}
	return false
}

// Label returns the pt-BR display label used in the WhatsApp summary.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentMethodPix:
		return "PIX"
	case PaymentMethodCard:
		return "Cartão"
	case PaymentMethodCash:
		return "Dinheiro"
	default:
		return string(m)
	}
}

// TimeSlots is the closed set of bookable times the form offers. Nothing
// server-side checks slot availability; two customers can book the same one.
var TimeSlots = []string{
	"09:00", "10:00", "11:00", "12:00",
	"14:00", "15:00", "16:00", "17:00", "18:00",
}

func ValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

type Appointment struct {
	Base
	ServiceID       uuid.UUID         `db:"service_id"`
	CustomerName    string            `db:"customer_name"`
	CustomerPhone   string            `db:"customer_phone"`
	AppointmentDate time.Time         `db:"appointment_date"`
	AppointmentTime string            `db:"appointment_time"`
	Status          AppointmentStatus `db:"status"`
	PaymentMethod   PaymentMethod     `db:"payment_method"`
	Notes           *string           `db:"notes"`
}
