package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Load parses environment variables into cfg, which must be a pointer to a
// struct using `env` and `envDefault` tags.
func Load(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}
