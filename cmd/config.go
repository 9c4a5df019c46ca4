package cmd

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	HTTPPort            string        `validate:"required,numeric"`
	DBHost              string        `validate:"required"`
	DBPort              string        `validate:"required,numeric"`
	DBUser              string        `validate:"required"`
	DBPassword          string
	DBName              string        `validate:"required"`
	DBSslMode           string        `validate:"oneof=disable allow prefer require verify-ca verify-full"`
	LogLevel            string        `validate:"oneof=debug info warn error"`
	HealthCheckSchedule string        `validate:"required"`
	ShutdownTimeout     time.Duration `validate:"gt=0"`
}

// LoadConfig reads the environment, optionally seeded from a .env file in the
// working directory, applies defaults and validates the result.
func LoadConfig() (Config, error) {
	_ = godotenv.Load(".env")

	cfg := Config{
		HTTPPort:            cast.ToString(getOrReturnDefault("HTTP_PORT", "8080")),
		DBHost:              cast.ToString(getOrReturnDefault("DB_HOST", "localhost")),
		DBPort:              cast.ToString(getOrReturnDefault("DB_PORT", "5432")),
		DBUser:              cast.ToString(getOrReturnDefault("DB_USER", "postgres")),
		DBPassword:          cast.ToString(getOrReturnDefault("DB_PASSWORD", "")),
		DBName:              cast.ToString(getOrReturnDefault("DB_NAME", "postgres")),
		DBSslMode:           cast.ToString(getOrReturnDefault("DB_SSLMODE", "disable")),
		LogLevel:            cast.ToString(getOrReturnDefault("LOG_LEVEL", "info")),
		HealthCheckSchedule: cast.ToString(getOrReturnDefault("HEALTH_CHECK_SCHEDULE", "*/15 * * * * *")),
		ShutdownTimeout:     cast.ToDuration(getOrReturnDefault("SHUTDOWN_TIMEOUT", "10s")),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// DSN renders the PostgreSQL connection URL understood by both pgx and lib/pq.
func (c Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSslMode}}.Encode(),
	}
	return u.String()
}

// Addr is the listen address of the HTTP server.
func (c Config) Addr() string {
	return net.JoinHostPort("0.0.0.0", c.HTTPPort)
}

func getOrReturnDefault(key string, defaultValue any) any {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
