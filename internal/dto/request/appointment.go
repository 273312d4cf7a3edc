package request

type CreateAppointmentRequest struct {
	CustomerName    string  `json:"customer_name" validate:"required,min=1,max=120"`
	CustomerPhone   string  `json:"customer_phone" validate:"required,min=1,max=30"`
	ServiceID       string  `json:"service_id" validate:"required,uuid4"`
	AppointmentDate string  `json:"appointment_date" validate:"required,datetime=2006-01-02"`
	AppointmentTime string  `json:"appointment_time" validate:"required,oneof=09:00 10:00 11:00 12:00 14:00 15:00 16:00 17:00 18:00"`
	PaymentMethod   string  `json:"payment_method" validate:"required,oneof=pix card cash"`
	Notes           *string `json:"notes,omitempty"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}
