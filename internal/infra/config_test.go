package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("ADMIN_EMAILS", " ops@studio.dev, , admin@studio.dev ")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Port)
	}
	if !cfg.DemoMode() {
		t.Fatal("expected demo mode without DATABASE_URL")
	}
	if cfg.GenerationTimeout != 30*time.Second {
		t.Fatalf("GenerationTimeout = %v, want 30s", cfg.GenerationTimeout)
	}
	want := []string{"ops@studio.dev", "admin@studio.dev"}
	if len(cfg.AdminEmails) != len(want) {
		t.Fatalf("AdminEmails = %v, want %v", cfg.AdminEmails, want)
	}
	for i := range want {
		if cfg.AdminEmails[i] != want[i] {
			t.Fatalf("AdminEmails[%d] = %q, want %q", i, cfg.AdminEmails[i], want[i])
		}
	}
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error without JWT_SECRET")
	}
}
