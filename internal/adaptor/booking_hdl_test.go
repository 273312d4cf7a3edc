package adaptor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"salon-booking/internal/dto/request"
	"salon-booking/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBookingService struct {
	createAppointment func(ctx context.Context, req *request.CreateAppointmentRequest) (*response.BookingCreatedResponse, error)
}

func (f *fakeBookingService) CreateAppointment(ctx context.Context, req *request.CreateAppointmentRequest) (*response.BookingCreatedResponse, error) {
	return f.createAppointment(ctx, req)
}

const validBookingBody = `{
	"customer_name": "Ana Silva",
	"customer_phone": "11988887777",
	"service_id": "7f0c2c3e-58a8-4b2e-9f43-1c9b8e7a6d5f",
	"appointment_date": "2025-03-10",
	"appointment_time": "14:00",
	"payment_method": "pix"
}`

func TestCreateAppointmentHandler_Success(t *testing.T) {
	handler := NewBookingHandler(&fakeBookingService{
		createAppointment: func(ctx context.Context, req *request.CreateAppointmentRequest) (*response.BookingCreatedResponse, error) {
			assert.Equal(t, "Ana Silva", req.CustomerName)
			return &response.BookingCreatedResponse{
				WhatsAppURL: "https://wa.me/5511999999999?text=test",
			}, nil
		},
	}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(validBookingBody))
	rec := httptest.NewRecorder()

	handler.CreateAppointment(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "wa.me")
}

func TestCreateAppointmentHandler_ValidationFailure(t *testing.T) {
	handler := NewBookingHandler(&fakeBookingService{
		createAppointment: func(ctx context.Context, req *request.CreateAppointmentRequest) (*response.BookingCreatedResponse, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}, zap.NewNop())

	body := `{"customer_name": "", "customer_phone": "11988887777"}`
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.CreateAppointment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateAppointmentHandler_ServiceNotFound(t *testing.T) {
	handler := NewBookingHandler(&fakeBookingService{
		createAppointment: func(ctx context.Context, req *request.CreateAppointmentRequest) (*response.BookingCreatedResponse, error) {
			return nil, fmt.Errorf("service not found: %s", req.ServiceID)
		},
	}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(validBookingBody))
	rec := httptest.NewRecorder()

	handler.CreateAppointment(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateAppointmentHandler_InsertFailure(t *testing.T) {
	handler := NewBookingHandler(&fakeBookingService{
		createAppointment: func(ctx context.Context, req *request.CreateAppointmentRequest) (*response.BookingCreatedResponse, error) {
			return nil, fmt.Errorf("create appointment: connection reset")
		},
	}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(validBookingBody))
	rec := httptest.NewRecorder()

	handler.CreateAppointment(rec, req)

	// the form keeps its values and retries; no success payload leaks out
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "whatsapp_url")
}
