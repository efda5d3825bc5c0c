package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config holds the defaults used when a flag is not given.
type Config struct {
	DeckSize int    `env:"DECK_SIZE" envDefault:"100" validate:"gte=0"`
	HandSize int    `env:"HAND_SIZE" envDefault:"7" validate:"gte=0"`
	Trials   int    `env:"TRIALS" envDefault:"100000" validate:"gt=0"`
	Workers  int    `env:"WORKERS" envDefault:"4" validate:"gt=0"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
}

// Load reads the configuration from DECK_ODDS_* environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "DECK_ODDS_"}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
