package main

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime settings, read from the environment.
type Config struct {
	Port        int           `envconfig:"APP_PORT" default:"8081"`
	DBDSN       string        `envconfig:"DB_DSN"`
	AutoMigrate bool          `envconfig:"DB_AUTO_MIGRATE" default:"true"`
	JWTSecret   string        `envconfig:"JWT_SECRET" default:"dev-insecure-secret-change"`
	TokenTTL    time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
	CORSOrigins []string      `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`
}

func loadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
