package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatusTransitions(t *testing.T) {
	statuses := []AppointmentStatus{
		AppointmentStatusPending,
		AppointmentStatusConfirmed,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
	}

	allowed := map[AppointmentStatus][]AppointmentStatus{
		AppointmentStatusPending:   {AppointmentStatusConfirmed, AppointmentStatusCancelled},
		AppointmentStatusConfirmed: {AppointmentStatusCompleted},
		AppointmentStatusCompleted: nil,
		AppointmentStatusCancelled: nil,
	}

	for _, from := range statuses {
		assert.Equal(t, allowed[from], from.Transitions(), "transitions from %s", from)

		for _, to := range statuses {
			want := false
			for _, ok := range allowed[from] {
				if ok == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestAppointmentStatusValid(t *testing.T) {
	assert.True(t, AppointmentStatusPending.Valid())
	assert.True(t, AppointmentStatusCancelled.Valid())
	assert.False(t, AppointmentStatus("archived").Valid())
	assert.False(t, AppointmentStatus("").Valid())
}

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, "Pendente", AppointmentStatusPending.Label())
	assert.Equal(t, "Confirmado", AppointmentStatusConfirmed.Label())
	assert.Equal(t, "Concluído", AppointmentStatusCompleted.Label())
	assert.Equal(t, "Cancelado", AppointmentStatusCancelled.Label())
}

func TestPaymentMethodLabels(t *testing.T) {
	assert.Equal(t, "PIX", PaymentMethodPix.Label())
	assert.Equal(t, "Cartão", PaymentMethodCard.Label())
	assert.Equal(t, "Dinheiro", PaymentMethodCash.Label())
}

func TestTimeSlots(t *testing.T) {
	// nine fixed slots, no lunch-hour 13:00
	assert.Len(t, TimeSlots, 9)
	for _, slot := range TimeSlots {
		assert.True(t, ValidTimeSlot(slot), slot)
	}
	assert.False(t, ValidTimeSlot("13:00"))
	assert.False(t, ValidTimeSlot("9:00"))
}

func TestNormalizeIcon(t *testing.T) {
	assert.Equal(t, IconScissors, NormalizeIcon("Scissors"))
	assert.Equal(t, IconSparkles, NormalizeIcon("Rocket"))
	assert.Equal(t, IconSparkles, NormalizeIcon(""))
}
