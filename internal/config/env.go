package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// ServerConfig is read from the environment by the serve command
type ServerConfig struct {
	Port           string   `env:"MCFOLIO_PORT" envDefault:"8080"`
	Environment    string   `env:"MCFOLIO_ENV" envDefault:"development"`
	AllowedOrigins []string `env:"MCFOLIO_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	NumSimulations int      `env:"MCFOLIO_SIMULATIONS" envDefault:"10000"`
	Currency       string   `env:"MCFOLIO_CURRENCY" envDefault:"USD"`
}

// IsProduction reports whether gin should run in release mode
func (c ServerConfig) IsProduction() bool {
	return c.Environment == "production"
}

// ParseServerEnv loads server configuration from environment variables
func ParseServerEnv() (ServerConfig, error) {
	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.NumSimulations < 1 || cfg.NumSimulations > MaxSimulations {
		return ServerConfig{}, fmt.Errorf("MCFOLIO_SIMULATIONS must be between 1 and %d, got %d", MaxSimulations, cfg.NumSimulations)
	}
	cfg.Currency = strings.ToUpper(strings.TrimSpace(cfg.Currency))
	if len(cfg.Currency) != 3 {
		return ServerConfig{}, fmt.Errorf("MCFOLIO_CURRENCY must be a three-letter ISO code, got %q", cfg.Currency)
	}
	return cfg, nil
}
