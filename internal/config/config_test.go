package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.ContentWeight != 0.6 || cfg.CollaborativeWeight != 0.4 {
		t.Errorf("expected default weights 0.6/0.4, got %f/%f", cfg.ContentWeight, cfg.CollaborativeWeight)
	}
	if cfg.CacheTTL != 10*time.Minute {
		t.Errorf("expected default TTL 10m, got %v", cfg.CacheTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CONTENT_WEIGHT", "0.7")
	t.Setenv("COLLABORATIVE_WEIGHT", "0.3")
	t.Setenv("CACHE_TTL", "1m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.ContentWeight != 0.7 || cfg.CollaborativeWeight != 0.3 {
		t.Errorf("expected weights 0.7/0.3, got %f/%f", cfg.ContentWeight, cfg.CollaborativeWeight)
	}
	if cfg.CacheTTL != time.Minute {
		t.Errorf("expected TTL 1m, got %v", cfg.CacheTTL)
	}
}

func TestGetEnvFallbacksOnGarbage(t *testing.T) {
	t.Setenv("DB_POOL_SIZE", "not-a-number")
	t.Setenv("LIKED_THRESHOLD", "four")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DBPoolSize != 20 {
		t.Errorf("expected fallback pool size 20, got %d", cfg.DBPoolSize)
	}
	if cfg.LikedThreshold != 4.0 {
		t.Errorf("expected fallback threshold 4.0, got %f", cfg.LikedThreshold)
	}
}
