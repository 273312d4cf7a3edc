// Package whatsapp builds wa.me deep links with pre-filled messages.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const baseURL = "https://wa.me/"

// Greeting is the pre-filled message behind the site's contact button.
const Greeting = "Olá! Gostaria de saber mais sobre os serviços."

// BookingMessage builds the multi-line appointment summary the customer
// sends to the salon after booking. Date renders as dd/mm/yyyy (pt-BR),
// payment is the display label (PIX, Cartão, Dinheiro).
func BookingMessage(customerName, serviceName string, date time.Time, timeSlot, paymentLabel string) string {
	var b strings.Builder
	b.WriteString("Olá! Gostaria de confirmar meu agendamento:\n\n")
	fmt.Fprintf(&b, "👤 Nome: %s\n", customerName)
	fmt.Fprintf(&b, "💅 Serviço: %s\n", serviceName)
	fmt.Fprintf(&b, "📅 Data: %s\n", date.Format("02/01/2006"))
	fmt.Fprintf(&b, "⏰ Horário: %s\n", timeSlot)
	fmt.Fprintf(&b, "💳 Pagamento: %s", paymentLabel)
	return b.String()
}

// Link returns a wa.me URL for the given phone number with the message as
// the text query parameter. Spaces are percent-encoded, not '+', so the
// link opens correctly in the WhatsApp client.
func Link(number, message string) string {
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return baseURL + number + "?text=" + text
}
