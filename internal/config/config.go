package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

const devJWTSecret = "dev-secret-change-in-production"

var ErrInsecureSecret = errors.New("JWT_SECRET must be set in production environment")

type Config struct {
	Port        string     `env:"PORT" envDefault:"8080"`
	Env         string     `env:"ENV" envDefault:"development"`
	LogLevel    slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	DatabaseDSN string     `env:"DATABASE_DSN" envDefault:"root:password@tcp(127.0.0.1:3306)/passforge?parseTime=true"`

	JWTSecret string        `env:"JWT_SECRET" envDefault:"dev-secret-change-in-production"`
	JWTExpiry time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`

	// WordListPath replaces the embedded word pool when set.
	WordListPath string `env:"WORDLIST_PATH"`

	GenerateRPS      float64 `env:"GENERATE_RPS" envDefault:"20"`
	GenerateBurst    int     `env:"GENERATE_BURST" envDefault:"40"`
	GenerateMaxBatch int     `env:"GENERATE_MAX_BATCH" envDefault:"20"`

	// MinAccountPasswordScore is the minimum strength score for account passwords.
	MinAccountPasswordScore int `env:"MIN_ACCOUNT_PASSWORD_SCORE" envDefault:"50"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	if cfg.IsProduction() && cfg.JWTSecret == devJWTSecret {
		return Config{}, ErrInsecureSecret
	}
	if cfg.GenerateMaxBatch < 1 {
		cfg.GenerateMaxBatch = 1
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}
