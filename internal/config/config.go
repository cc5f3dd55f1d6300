package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/go-playground/validator/v10"
)

// Config carries host process settings. It configures the surrounding
// tooling only, never the customer entity itself.
type Config struct {
	LogLevel string `env:"CUSTOMERS_LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	FirstID  int64  `env:"CUSTOMERS_FIRST_ID" envDefault:"1" validate:"min=0"`
}

func Build() (Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return cfg, fmt.Errorf("invalid configuration - %w", err)
	}

	return cfg, nil
}
