package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

var ErrMisconfigured = errors.New("config invalid")

type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Database DatabaseConfig
}

type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type DatabaseConfig struct {
	Driver   string
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Addr:           getenv("HTTP_ADDR", ":8080"),
			AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
		Database: DatabaseConfig{
			Driver:   getenv("DB_DRIVER", DriverPostgres),
			URL:      os.Getenv("DATABASE_URL"),
			Host:     getenv("DB_HOST", "localhost"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  getenv("DB_SSLMODE", "disable"),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		return Config{}, fmt.Errorf("%w: JWT_SECRET is required", ErrMisconfigured)
	}

	ttl, err := time.ParseDuration(getenv("JWT_TTL", "24h"))
	if err != nil {
		return Config{}, fmt.Errorf("%w: invalid JWT_TTL", ErrMisconfigured)
	}
	cfg.Auth.TokenTTL = ttl

	switch cfg.Database.Driver {
	case DriverPostgres, DriverMySQL:
	default:
		return Config{}, fmt.Errorf("%w: unsupported DB_DRIVER %q", ErrMisconfigured, cfg.Database.Driver)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
