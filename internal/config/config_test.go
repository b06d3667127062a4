package config

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Addr != ":8000" {
		t.Errorf("addr = %q, want :8000", cfg.Addr)
	}
	if cfg.SessionTimeout != 30*time.Minute {
		t.Errorf("session timeout = %v, want 30m", cfg.SessionTimeout)
	}
	if cfg.SilenceThreshold != 12 {
		t.Errorf("silence threshold = %d, want 12", cfg.SilenceThreshold)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Errorf("allowed origins = %v, want [*]", cfg.AllowedOrigins)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LEARNO_ADDR", ":9999")
	t.Setenv("LEARNO_MODE", "prod")
	t.Setenv("LEARNO_SESSION_TIMEOUT_SECONDS", "600")
	t.Setenv("LEARNO_SILENCE_THRESHOLD_SECONDS", "20")
	t.Setenv("LEARNO_ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg := FromEnv()

	if cfg.Addr != ":9999" {
		t.Errorf("addr = %q, want :9999", cfg.Addr)
	}
	if cfg.Mode != "prod" {
		t.Errorf("mode = %q, want prod", cfg.Mode)
	}
	if cfg.SessionTimeout != 10*time.Minute {
		t.Errorf("session timeout = %v, want 10m", cfg.SessionTimeout)
	}
	if cfg.SilenceThreshold != 20 {
		t.Errorf("silence threshold = %d, want 20", cfg.SilenceThreshold)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[0] != "https://app.example.com" {
		t.Errorf("allowed origins = %v", cfg.AllowedOrigins)
	}
}

func TestFromEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("LEARNO_SESSION_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("LEARNO_SILENCE_THRESHOLD_SECONDS", "-5")

	cfg := FromEnv()

	if cfg.SessionTimeout != 30*time.Minute {
		t.Errorf("session timeout = %v, want default 30m", cfg.SessionTimeout)
	}
	if cfg.SilenceThreshold != 12 {
		t.Errorf("silence threshold = %d, want default 12", cfg.SilenceThreshold)
	}
}
