package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the relayctl client configuration.
type Config struct {
	Server  ServerEndpointConfig `mapstructure:"server"`
	Logging LoggingConfig        `mapstructure:"logging"`
}

type ServerEndpointConfig struct {
	BaseURL       string `mapstructure:"base_url"`
	TimeoutSec    int    `mapstructure:"timeout_sec"`
	RetryCount    int    `mapstructure:"retry_count"`
	RetryDelay    int    `mapstructure:"retry_delay_sec"`
	RatePerSecond int    `mapstructure:"rate_per_second"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("server.base_url", "http://localhost:10000")
	v.SetDefault("server.timeout_sec", 0)
	v.SetDefault("server.retry_count", 3)
	v.SetDefault("server.retry_delay_sec", 1)
	v.SetDefault("server.rate_per_second", 5)
	v.SetDefault("logging.level", "info")

	// Environment variable support
	v.SetEnvPrefix("RELAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Load config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("relayctl")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	errs := &ValidationErrors{}
	if !strings.HasPrefix(c.Server.BaseURL, "http://") && !strings.HasPrefix(c.Server.BaseURL, "https://") {
		errs.Add("server.base_url", c.Server.BaseURL, "must start with http:// or https://")
	}
	if c.Server.TimeoutSec < 0 {
		errs.Add("server.timeout_sec", fmt.Sprint(c.Server.TimeoutSec), "must be >= 0")
	}
	if c.Server.RetryCount < 0 {
		errs.Add("server.retry_count", fmt.Sprint(c.Server.RetryCount), "must be >= 0")
	}
	if c.Server.RatePerSecond < 1 {
		errs.Add("server.rate_per_second", fmt.Sprint(c.Server.RatePerSecond), "must be >= 1")
	}
	if errs.HasErrors() {
		return errs
	}
	return nil
}
