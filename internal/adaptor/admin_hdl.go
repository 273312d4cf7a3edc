package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"salon-booking/internal/dto/request"
	"salon-booking/internal/usecase"
	"salon-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// ListAppointments handles GET /api/admin/appointments?status=
//
// Always 200: load failures degrade to an empty list, same policy as the
// catalog.
func (h *AdminHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	statusFilter := r.URL.Query().Get("status")

	appointments := h.service.ListAppointments(r.Context(), statusFilter)

	utils.ResponseSuccess(w, "success", appointments)
}

// UpdateStatus handles PATCH /api/admin/appointments/{id}/status
func (h *AdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, "id")
	if appointmentID == "" {
		utils.ResponseBadRequest(w, "Appointment ID is required", nil)
		return
	}

	var req request.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	appointment, err := h.service.UpdateStatus(r.Context(), appointmentID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update appointment status")
		return
	}

	utils.ResponseSuccess(w, "Appointment status updated", appointment)
}

// handleServiceError handles errors untuk admin operations
func (h *AdminHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "cannot transition"),
		strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
