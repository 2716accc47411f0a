package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLoadServerConfigDefaults(t *testing.T) {
	cfg, err := LoadServerConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "10000" {
		t.Errorf("expected port 10000, got %s", cfg.Port)
	}
	if cfg.ReadWaitTimeout != 0 {
		t.Errorf("expected unbounded reads by default, got %s", cfg.ReadWaitTimeout)
	}
	if cfg.StreamLinkWaitMode != "shared" {
		t.Errorf("expected shared wait mode, got %s", cfg.StreamLinkWaitMode)
	}
	if !cfg.WSEnabled {
		t.Error("expected websocket enabled by default")
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("expected 30s shutdown timeout, got %s", cfg.ShutdownTimeout)
	}
}

func TestLoadServerConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("READ_WAIT_TIMEOUT", "45s")
	t.Setenv("STREAM_LINK_WAIT_MODE", "per_key")
	t.Setenv("WS_ENABLED", "false")

	cfg, err := LoadServerConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8081" || cfg.ReadWaitTimeout != 45*time.Second ||
		cfg.StreamLinkWaitMode != "per_key" || cfg.WSEnabled {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestLoadServerConfigCollectsAllErrors(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("READ_WAIT_TIMEOUT", "soon")
	t.Setenv("STREAM_LINK_WAIT_MODE", "bogus")
	t.Setenv("LOG_FORMAT", "xml")

	_, err := LoadServerConfig()
	if err == nil {
		t.Fatal("expected validation error")
	}

	var verr *ValidationErrors
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationErrors, got %T", err)
	}
	if len(verr.Invalid) != 4 {
		t.Errorf("expected 4 invalid settings, got %d: %v", len(verr.Invalid), verr)
	}
	for _, key := range []string{"PORT", "READ_WAIT_TIMEOUT", "STREAM_LINK_WAIT_MODE", "LOG_FORMAT"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error should mention %s, got: %v", key, err)
		}
	}
}
