package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultHTTPAddr    = ":8080"
	defaultDatabaseURL = "fleetbook.db"
	defaultJWTSecret   = "change-me-jwt-secret"
	defaultJWTTTL      = "24h"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
	CORSOrigins string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.HTTPAddr = getEnv("HTTP_ADDR", defaultHTTPAddr)
	cfg.DatabaseURL = getEnv("DATABASE_URL", defaultDatabaseURL)
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.CORSOrigins = os.Getenv("CORS_ALLOWED_ORIGINS")

	ttlRaw := getEnv("JWT_TTL", defaultJWTTTL)
	ttl, err := time.ParseDuration(ttlRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL value %q: %w", ttlRaw, err)
	}
	cfg.JWTTTL = ttl

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if isProdLike(cfg.AppEnv) && cfg.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}
	return nil
}

func isProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
