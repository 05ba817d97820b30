package config

import (
	"strings"
	"testing"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("OOHDESK_APP_ENV", "dev")
	t.Setenv("OOHDESK_APP_PORT", "8080")
	t.Setenv("OOHDESK_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("OOHDESK_JWT_SECRET", "secret")
	t.Setenv("OOHDESK_JWT_ISSUER", "oohdesk")
}

func TestLoadWithDSN(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("OOHDESK_DB_DSN", "postgres://app:pw@localhost:5432/oohdesk?sslmode=disable")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.App.IsDev() {
		t.Fatalf("expected dev env")
	}
	if cfg.DB.DSN == "" {
		t.Fatalf("expected DSN to be set")
	}
	if cfg.JWT.AccessTokenTTL().Minutes() != 480 {
		t.Fatalf("expected default 480 minute TTL, got %v", cfg.JWT.AccessTokenTTL())
	}
}

func TestLoadAssemblesLegacyDSN(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("OOHDESK_DB_DSN", "")
	t.Setenv("OOHDESK_DB_HOST", "db.internal")
	t.Setenv("OOHDESK_DB_USER", "oohdesk")
	t.Setenv("OOHDESK_DB_PASSWORD", "pw")
	t.Setenv("OOHDESK_DB_NAME", "oohdesk")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !strings.Contains(cfg.DB.DSN, "db.internal:5432") {
		t.Fatalf("unexpected DSN %q", cfg.DB.DSN)
	}
	if !strings.Contains(cfg.DB.DSN, "sslmode=disable") {
		t.Fatalf("expected sslmode in DSN, got %q", cfg.DB.DSN)
	}
}

func TestLoadFailsWithoutDBConfig(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("OOHDESK_DB_DSN", "")
	t.Setenv("OOHDESK_DB_HOST", "")
	t.Setenv("OOHDESK_DB_USER", "")
	t.Setenv("OOHDESK_DB_NAME", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when DB config missing")
	}
}
