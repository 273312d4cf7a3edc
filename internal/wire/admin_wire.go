package wire

import (
	"salon-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAdmin(r chi.Router, adminHandler *adaptor.AdminHandler) {
	// The admin surface has no authentication boundary, matching the site
	// it backs. Known gap, flagged in DESIGN.md.
	r.Route("/api/admin/appointments", func(r chi.Router) {
		// GET /api/admin/appointments?status= - full history + stats
		r.Get("/", adminHandler.ListAppointments)

		// PATCH /api/admin/appointments/{id}/status - guarded transition
		r.Patch("/{id}/status", adminHandler.UpdateStatus)
	})
}
