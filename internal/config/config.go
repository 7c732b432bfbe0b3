package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr           string        `env:"ADDR" envDefault:":8080"`
	DBDriver       string        `env:"DB_DRIVER" envDefault:"sqlite"`
	DBPath         string        `env:"DB_PATH" envDefault:"file:wordgame.db"`
	DatabaseURL    string        `env:"DATABASE_URL"`
	WordsPath      string        `env:"WORDS_PATH" envDefault:"static/data/words.json"`
	StaticDir      string        `env:"STATIC_DIR" envDefault:"static"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"INFO"`
	LogSQL         bool          `env:"LOG_SQL" envDefault:"false"`
	StorageTimeout time.Duration `env:"STORAGE_TIMEOUT" envDefault:"5s"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
	CORSOrigins    []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying defaults for anything unset.
func Load() (Config, error) {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	switch c.DBDriver {
	case "sqlite", "sqlite3":
		if strings.TrimSpace(c.DBPath) == "" {
			return fmt.Errorf("DB_PATH cannot be empty when DB_DRIVER=%s", c.DBDriver)
		}
	case "postgres", "postgresql", "mysql":
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("DATABASE_URL is required when DB_DRIVER=%s", c.DBDriver)
		}
	default:
		return fmt.Errorf("DB_DRIVER %q is not supported (use sqlite, postgres or mysql)", c.DBDriver)
	}
	if strings.TrimSpace(c.WordsPath) == "" {
		return fmt.Errorf("WORDS_PATH cannot be empty")
	}
	if c.StorageTimeout <= 0 {
		return fmt.Errorf("STORAGE_TIMEOUT must be positive, got %s", c.StorageTimeout)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.RequestTimeout)
	}
	return nil
}

// DSN returns the connection string for the configured driver.
func (c Config) DSN() string {
	if c.DBDriver == "sqlite" || c.DBDriver == "sqlite3" {
		return c.DBPath
	}
	return c.DatabaseURL
}
