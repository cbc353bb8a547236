package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Port:       "8080",
		Env:        "development",
		JWTSecret:  "secret",
		TokenTTL:   360 * time.Hour,
		BcryptCost: 10,
	}
}

func TestConfig_Validate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cfg := validConfig()
	cfg.JWTSecret = ""
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for missing JWT secret")
	}

	cfg = validConfig()
	cfg.BcryptCost = 3
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for cost below minimum")
	}

	cfg = validConfig()
	cfg.TokenTTL = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for non-positive token lifetime")
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	cfg := validConfig()
	if !cfg.IsDevelopment() {
		t.Fatalf("development env not detected")
	}
	cfg.Env = "production"
	if cfg.IsDevelopment() {
		t.Fatalf("production env treated as development")
	}
}
