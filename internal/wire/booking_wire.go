package wire

import (
	"salon-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// POST /api/appointments - create booking, status always pending
	r.Post("/api/appointments", bookingHandler.CreateAppointment)
}
