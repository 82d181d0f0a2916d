package gateway

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the gateway's connection settings.
type Config struct {
	// BaseURL is the backend API root, without a trailing slash.
	BaseURL string `env:"API_BASE_URL,required"`

	// RequestTimeout bounds every request including body read.
	RequestTimeout time.Duration `env:"API_REQUEST_TIMEOUT" envDefault:"30s"`

	// RetryAttempts enables bounded retry for transport faults only.
	// Zero (the default) preserves single-shot behavior. Backend-rejected
	// requests are never retried.
	RetryAttempts int `env:"API_RETRY_ATTEMPTS" envDefault:"0"`

	// RetryInterval is the base backoff interval between retry attempts.
	RetryInterval time.Duration `env:"API_RETRY_INTERVAL" envDefault:"500ms"`
}

// LoadConfig reads the gateway configuration from the environment,
// loading a .env file first when one exists.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	return cfg, nil
}
