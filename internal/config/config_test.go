package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("expected defaults to load, got error: %v", err)
	}

	if cfg.Server.BaseURL != "http://localhost:10000" {
		t.Errorf("expected default base URL, got '%s'", cfg.Server.BaseURL)
	}
	if cfg.Server.RetryCount != 3 {
		t.Errorf("expected 3 retries by default, got %d", cfg.Server.RetryCount)
	}
	if cfg.Server.TimeoutSec != 0 {
		t.Errorf("expected no client timeout by default, got %d", cfg.Server.TimeoutSec)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("RELAY_SERVER_BASE_URL", "http://relay.internal:9000")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.BaseURL != "http://relay.internal:9000" {
		t.Errorf("expected env base URL, got '%s'", cfg.Server.BaseURL)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relayctl.yaml")
	content := "server:\n  base_url: https://relay.example.com\n  rate_per_second: 2\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.BaseURL != "https://relay.example.com" || cfg.Server.RatePerSecond != 2 {
		t.Errorf("file values not applied: %+v", cfg.Server)
	}
}

func TestLoadInvalidBaseURL(t *testing.T) {
	t.Setenv("RELAY_SERVER_BASE_URL", "localhost:10000")

	if _, err := Load(""); err == nil {
		t.Fatal("expected error for base URL without scheme")
	}
}
