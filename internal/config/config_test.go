package config_test

import (
	"testing"
	"time"

	"github.com/gitsunil577/SafeHer-Backend/internal/config"
)

func TestLoad_RedisPingTimeout(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Redis.PingTimeout != 5*time.Second {
		t.Fatalf("expected default ping timeout 5s, got %v", cfg.Redis.PingTimeout)
	}

	t.Setenv("REDIS_PING_TIMEOUT", "750ms")
	cfg, err = config.Load()
	if err != nil {
		t.Fatalf("Load with override: %v", err)
	}
	if cfg.Redis.PingTimeout != 750*time.Millisecond {
		t.Fatalf("expected overridden ping timeout 750ms, got %v", cfg.Redis.PingTimeout)
	}
}
