package authsession

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the session manager's settings.
type Config struct {
	// BaseURL is the backend API root, without a trailing slash.
	BaseURL string `env:"API_BASE_URL,required"`

	// GuestEmail designates the demo account that logs into the
	// restricted profile view. Empty disables the rule.
	GuestEmail string `env:"AUTH_GUEST_EMAIL"`

	// RequestTimeout bounds every auth request.
	RequestTimeout time.Duration `env:"AUTH_REQUEST_TIMEOUT" envDefault:"30s"`
}

// LoadConfig reads the manager configuration from the environment,
// loading a .env file first when one exists.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	return cfg, nil
}
