package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the process-wide settings. Every field has a development
// default so the server can start without a .env file.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"DB_NAME" envDefault:"productstore"`

	// PoolSize bounds the number of open database connections; one is
	// checked out per in-flight request.
	PoolSize       int           `env:"DB_POOL_SIZE" envDefault:"10"`
	AcquireTimeout time.Duration `env:"DB_ACQUIRE_TIMEOUT" envDefault:"5s"`

	JWTKey   string        `env:"JWT_KEY" envDefault:"dev-secret-please-change"`
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"http://localhost:3000"`
}

// Load reads an optional .env file and then parses the environment into a
// Config. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment config: %w", err)
	}
	return cfg, nil
}

// DSN builds the Postgres connection string for the pgx driver.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}
