package adaptor

import (
	"net/http"

	"salon-booking/internal/dto/response"
	"salon-booking/pkg/utils"
	"salon-booking/pkg/whatsapp"

	"go.uber.org/zap"
)

// SalonHandler serves the static identity block the site chrome renders.
// It reads config only; no data dependency.
type SalonHandler struct {
	config *utils.Config
	log    *zap.Logger
}

func NewSalonHandler(config *utils.Config, log *zap.Logger) *SalonHandler {
	return &SalonHandler{
		config: config,
		log:    log.With(zap.String("handler", "salon")),
	}
}

// GetSalonInfo handles GET /api/salon
func (h *SalonHandler) GetSalonInfo(w http.ResponseWriter, r *http.Request) {
	salon := h.config.Salon

	info := response.SalonResponse{
		Name:        salon.Name,
		Phone:       salon.WhatsApp,
		WhatsAppURL: whatsapp.Link(salon.WhatsApp, whatsapp.Greeting),
		Email:       salon.Email,
		Address:     salon.Address,
		Hours: response.SalonHours{
			Weekdays: salon.HoursWeekdays,
			Saturday: salon.HoursSaturday,
			Sunday:   salon.HoursSunday,
		},
		Instagram: salon.Instagram,
		Facebook:  salon.Facebook,
	}

	utils.ResponseSuccess(w, "success", info)
}
