package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Salon    SalonConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// SalonConfig is the identity block rendered by the site chrome and used to
// build the WhatsApp confirmation links.
type SalonConfig struct {
	Name          string
	WhatsApp      string
	Email         string
	Address       string
	HoursWeekdays string
	HoursSaturday string
	HoursSunday   string
	Instagram     string
	Facebook      string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("SALON_NAME", "BeautyStudio")
	viper.SetDefault("SALON_WHATSAPP", "5511999999999")
	viper.SetDefault("SALON_EMAIL", "contato@beautystudio.com")
	viper.SetDefault("SALON_ADDRESS", "Rua das Flores, 123")
	viper.SetDefault("SALON_HOURS_WEEKDAYS", "Segunda a Sexta: 9h - 19h")
	viper.SetDefault("SALON_HOURS_SATURDAY", "Sábado: 9h - 17h")
	viper.SetDefault("SALON_HOURS_SUNDAY", "Domingo: Fechado")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Salon: SalonConfig{
			Name:          viper.GetString("SALON_NAME"),
			WhatsApp:      viper.GetString("SALON_WHATSAPP"),
			Email:         viper.GetString("SALON_EMAIL"),
			Address:       viper.GetString("SALON_ADDRESS"),
			HoursWeekdays: viper.GetString("SALON_HOURS_WEEKDAYS"),
			HoursSaturday: viper.GetString("SALON_HOURS_SATURDAY"),
			HoursSunday:   viper.GetString("SALON_HOURS_SUNDAY"),
			Instagram:     viper.GetString("SALON_INSTAGRAM"),
			Facebook:      viper.GetString("SALON_FACEBOOK"),
		},
	}

	return config, nil
}
