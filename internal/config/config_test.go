package config_test

import (
	"testing"
	"time"

	"github.com/bkaddour/authd/internal/config"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_PATH", "auth.db")
	t.Setenv("JWT_SECRET", testSecret)
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("REQUEST_TIMEOUT", "")
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("COOKIE_SECURE", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env development, got %s", cfg.Env)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("expected default token TTL 24h, got %s", cfg.TokenTTL)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Fatalf("expected default request timeout 10s, got %s", cfg.RequestTimeout)
	}
	if cfg.BcryptCost != 12 {
		t.Fatalf("expected default bcrypt cost 12, got %d", cfg.BcryptCost)
	}
	if cfg.CookieSecure {
		t.Fatal("expected insecure cookies outside production by default")
	}
	if cfg.IsProduction() {
		t.Fatal("expected IsProduction to be false for development")
	}
}

func TestLoad_MissingDatabasePath(t *testing.T) {
	t.Setenv("DATABASE_PATH", "")
	t.Setenv("JWT_SECRET", testSecret)

	if _, err := config.Load(); err == nil {
		t.Fatal("expected an error for missing DATABASE_PATH")
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("DATABASE_PATH", "auth.db")
	t.Setenv("JWT_SECRET", "")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected an error for missing JWT_SECRET")
	}
}

func TestLoad_ShortSecret(t *testing.T) {
	t.Setenv("DATABASE_PATH", "auth.db")
	t.Setenv("JWT_SECRET", "too-short")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected an error for a short JWT_SECRET")
	}
}

func TestLoad_ProductionDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("COOKIE_SECURE", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.CookieSecure {
		t.Fatal("expected secure cookies in production")
	}
	if !cfg.IsProduction() {
		t.Fatal("expected IsProduction to be true")
	}
}

func TestLoad_CookieSecureOverride(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("COOKIE_SECURE", "false")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CookieSecure {
		t.Fatal("expected COOKIE_SECURE=false to override the production default")
	}
}

func TestLoad_TokenTTL(t *testing.T) {
	setRequired(t)
	t.Setenv("TOKEN_TTL", "1h")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TokenTTL != time.Hour {
		t.Fatalf("expected 1h token TTL, got %s", cfg.TokenTTL)
	}
}

func TestLoad_InvalidDurations(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"garbage ttl", "TOKEN_TTL", "soon"},
		{"negative ttl", "TOKEN_TTL", "-1h"},
		{"garbage timeout", "REQUEST_TIMEOUT", "whenever"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tc.key, tc.value)
			if _, err := config.Load(); err == nil {
				t.Fatalf("expected an error for %s=%s", tc.key, tc.value)
			}
		})
	}
}

func TestLoad_BcryptCostBounds(t *testing.T) {
	for _, v := range []string{"3", "15", "abc"} {
		setRequired(t)
		t.Setenv("BCRYPT_COST", v)
		if _, err := config.Load(); err == nil {
			t.Fatalf("expected an error for BCRYPT_COST=%s", v)
		}
	}

	setRequired(t)
	t.Setenv("BCRYPT_COST", "10")
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BcryptCost != 10 {
		t.Fatalf("expected bcrypt cost 10, got %d", cfg.BcryptCost)
	}
}
