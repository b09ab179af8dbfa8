// Package config loads runtime settings from the environment.
package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/caverns/internal/errors"
	"github.com/KirkDiggler/caverns/internal/repositories/catalog"
)

// Config holds the settings read once at startup.
type Config struct {
	// Catalog names the built-in monster catalog the game loads.
	Catalog string `env:"CAVERNS_CATALOG" envDefault:"classic"`
}

// Load reads settings from the environment and rejects values the
// game cannot run with.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}

	if _, err := catalog.ByName(cfg.Catalog); err != nil {
		return nil, err
	}

	return &cfg, nil
}
