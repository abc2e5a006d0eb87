package config

import (
	"testing"
	"time"
	_ "time/tzdata"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "REDIS_DB", "GEMINI_API_KEY", "API_KEY", "NOTIFY_QUEUE_SIZE", "GENERATOR_CACHE_TTL", "APP_TIMEZONE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.Addr() != "0.0.0.0:8080" {
		t.Fatalf("unexpected addr %s", cfg.App.Addr())
	}
	if cfg.Generator.APIKey != "" || cfg.Generator.Model != "gemini-2.5-flash" || cfg.Generator.CacheTTL != 24*time.Hour {
		t.Fatalf("unexpected generator config: %+v", cfg.Generator)
	}
	if cfg.Notification.QueueSize != 100 || cfg.Notification.OutboxEnabled {
		t.Fatalf("unexpected notification config: %+v", cfg.Notification)
	}
	if cfg.App.Location().String() != "Europe/Paris" {
		t.Fatalf("unexpected location %s", cfg.App.Location())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("API_KEY", "legacy-key")
	t.Setenv("GENERATOR_CACHE_TTL", "15m")
	t.Setenv("NOTIFY_QUEUE_SIZE", "not-a-number")
	t.Setenv("APP_TIMEZONE", "Mars/Olympus")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.Port != "9090" || cfg.Generator.APIKey != "legacy-key" || cfg.Generator.CacheTTL != 15*time.Minute {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Notification.QueueSize != 100 {
		t.Fatalf("invalid int must fall back, got %d", cfg.Notification.QueueSize)
	}
	if cfg.App.Location() != time.UTC {
		t.Fatalf("unknown timezone must fall back to UTC")
	}
}

func TestLoadRejectsInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "zero")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error")
	}
}
