package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration values.
type Config struct {
	Port               string        `envconfig:"APP_PORT" default:"8080"`
	JWTSecret          string        `envconfig:"JWT_SECRET" default:"change-me-in-production"`
	TokenTTL           time.Duration `envconfig:"JWT_TTL" default:"24h"`
	UploadDir          string        `envconfig:"UPLOAD_DIR" default:"uploads"`
	MaxUploadBytes     int64         `envconfig:"MAX_UPLOAD_BYTES" default:"5242880"`
	OTPTTL             time.Duration `envconfig:"OTP_TTL" default:"5m"`
	GoogleClientID     string        `envconfig:"GOOGLE_CLIENT_ID" default:""`
	GoogleClientSecret string        `envconfig:"GOOGLE_CLIENT_SECRET" default:""`
	GoogleRedirectURL  string        `envconfig:"GOOGLE_REDIRECT_URL" default:"http://localhost:8080/api/auth/google/callback"`
}

// Load reads .env if present, then populates Config from the
// environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
