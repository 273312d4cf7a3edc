package wire

import (
	"salon-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSalon(r chi.Router, salonHandler *adaptor.SalonHandler) {
	// GET /api/salon - static identity block for the site chrome
	r.Get("/api/salon", salonHandler.GetSalonInfo)
}
