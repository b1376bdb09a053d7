package config

import "os"

// Config carries every externally supplied setting. It is built once in main
// and handed to the components that need it; nothing below main reads the
// process environment directly.
type Config struct {
	Port        string
	DatabaseURL string
	SiteURL     string

	JWTSecret     string
	SessionSecret string

	SMTP   SMTPConfig
	Google GoogleConfig

	// Seed superadmin, created on first migration when both are set.
	AdminEmail    string
	AdminPassword string
}

// SMTPConfig configures the outbound mail dispatcher. Mail is disabled when
// any field is empty.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// GoogleConfig holds the OAuth client credentials.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
}

// Load reads the environment into a Config, applying dev-friendly defaults
// for everything that is safe to default.
func Load() *Config {
	cfg := &Config{
		Port:          getenv("PORT", "3000"),
		DatabaseURL:   getenv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=errorswag port=5432 sslmode=disable"),
		SiteURL:       getenv("SITE_URL", "http://localhost:3000"),
		JWTSecret:     getenv("JWT_SECRET", "dev-secret-change-me"),
		SessionSecret: getenv("SESSION_SECRET", "secret_key_change_me"),
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     os.Getenv("SMTP_PORT"),
			Username: os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASS"),
			From:     os.Getenv("SMTP_FROM"),
		},
		Google: GoogleConfig{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		},
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
