// Package config reads process-wide settings from the environment once at
// startup. Components receive the values they need through constructors
// instead of reading environment variables ad hoc.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// minSecretLength is the minimum JWT_SECRET length accepted for HMAC-SHA256.
const minSecretLength = 32

// Config holds runtime settings for the auth service.
type Config struct {
	Port           string
	DatabasePath   string
	JWTSecret      string
	Env            string
	TokenTTL       time.Duration
	RequestTimeout time.Duration
	BcryptCost     int
	CookieSecure   bool
}

// Load builds a Config from the environment. A .env file in the working
// directory is read first if present. DATABASE_PATH and JWT_SECRET are
// required; everything else has a default.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set variables directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port: envOrDefault("PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),
	}

	cfg.DatabasePath = os.Getenv("DATABASE_PATH")
	if cfg.DatabasePath == "" {
		return nil, fmt.Errorf("DATABASE_PATH environment variable is required")
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if len(cfg.JWTSecret) < minSecretLength {
		return nil, fmt.Errorf("JWT_SECRET must be at least %d characters for HMAC-SHA256 security", minSecretLength)
	}

	var err error
	if cfg.TokenTTL, err = durationOrDefault("TOKEN_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.RequestTimeout, err = durationOrDefault("REQUEST_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	cfg.BcryptCost = 12
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		if parsed < 4 || parsed > 14 {
			return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", parsed)
		}
		cfg.BcryptCost = parsed
	}

	// Secure cookies by default in production; an explicit COOKIE_SECURE
	// overrides either way.
	cfg.CookieSecure = cfg.IsProduction()
	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		cfg.CookieSecure = v != "false"
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with production settings.
// Outside production, 500 responses may include the underlying error text.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func durationOrDefault(key string, defaultVal time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, d)
	}
	return d, nil
}
