package response

type SalonHours struct {
	Weekdays string `json:"weekdays"`
	Saturday string `json:"saturday"`
	Sunday   string `json:"sunday"`
}

// SalonResponse is the static identity block behind the site chrome
// (header, hero, footer). No table backs it.
type SalonResponse struct {
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	WhatsAppURL string     `json:"whatsapp_url"`
	Email       string     `json:"email"`
	Address     string     `json:"address"`
	Hours       SalonHours `json:"hours"`
	Instagram   string     `json:"instagram,omitempty"`
	Facebook    string     `json:"facebook,omitempty"`
}
