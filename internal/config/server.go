package config

import (
	"os"
	"strconv"
	"time"
)

type ServerConfig struct {
	Port string
	// ReadWaitTimeout bounds blocking reads; zero waits indefinitely.
	ReadWaitTimeout    time.Duration
	StreamLinkWaitMode string // "shared" or "per_key"
	WSEnabled          bool
	LogLevel           string
	LogFormat          string // "dev" or "json"
	ShutdownTimeout    time.Duration
}

func LoadServerConfig() (*ServerConfig, error) {
	errs := &ValidationErrors{}

	cfg := &ServerConfig{
		Port:               getEnvOrDefault("PORT", "10000"),
		ReadWaitTimeout:    parseDuration(errs, "READ_WAIT_TIMEOUT", "0s"),
		StreamLinkWaitMode: getEnvOrDefault("STREAM_LINK_WAIT_MODE", "shared"),
		WSEnabled:          parseBool(errs, "WS_ENABLED", "true"),
		LogLevel:           getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:          getEnvOrDefault("LOG_FORMAT", "dev"),
		ShutdownTimeout:    parseDuration(errs, "SHUTDOWN_TIMEOUT", "30s"),
	}

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errs.Add("PORT", cfg.Port, "must be a number between 1 and 65535")
	}
	if cfg.ReadWaitTimeout < 0 {
		errs.Add("READ_WAIT_TIMEOUT", cfg.ReadWaitTimeout.String(), "must be >= 0")
	}
	if cfg.StreamLinkWaitMode != "shared" && cfg.StreamLinkWaitMode != "per_key" {
		errs.Add("STREAM_LINK_WAIT_MODE", cfg.StreamLinkWaitMode, "must be 'shared' or 'per_key'")
	}
	if cfg.LogFormat != "dev" && cfg.LogFormat != "json" {
		errs.Add("LOG_FORMAT", cfg.LogFormat, "must be 'dev' or 'json'")
	}
	if !validLogLevels[cfg.LogLevel] {
		errs.Add("LOG_LEVEL", cfg.LogLevel, "must be one of debug, info, warn, error")
	}

	if errs.HasErrors() {
		return nil, errs
	}
	return cfg, nil
}

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true,
}

func parseDuration(errs *ValidationErrors, key, defaultVal string) time.Duration {
	raw := getEnvOrDefault(key, defaultVal)
	d, err := time.ParseDuration(raw)
	if err != nil {
		errs.Add(key, raw, "must be a duration like 30s or 1m")
		return 0
	}
	return d
}

func parseBool(errs *ValidationErrors, key, defaultVal string) bool {
	raw := getEnvOrDefault(key, defaultVal)
	b, err := strconv.ParseBool(raw)
	if err != nil {
		errs.Add(key, raw, "must be true or false")
		return false
	}
	return b
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
