// Package config holds the registrod daemon configuration: built-in
// defaults, an optional YAML file, and environment overrides, applied in
// that order.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/registrolabs/registro/pkg/schema"
)

const envPrefix = "REGISTRO"

// Config controls the registrod daemon.
type Config struct {
	Address       string `yaml:"address" envconfig:"ADDRESS"`
	Port          int    `yaml:"port" envconfig:"PORT"`
	LogLevel      string `yaml:"log_level" envconfig:"LOG_LEVEL"`
	SelfSignedTLS bool   `yaml:"self_signed_tls" envconfig:"SELF_SIGNED_TLS"`

	// Timeouts come from defaults or the environment; yaml.v3 has no
	// native duration decoding.
	ReadTimeout     time.Duration `yaml:"-" envconfig:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"-" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `yaml:"-" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"-" envconfig:"SHUTDOWN_TIMEOUT"`

	// Seeds are created in order at startup, so they receive ids 1..n.
	Seeds []schema.NewRecord `yaml:"seeds" ignored:"true"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Address:         "",
		Port:            8080,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     120 * time.Second,
		ShutdownTimeout: 15 * time.Second,
		LogLevel:        "info",
	}
}

// Load builds the configuration. path may be empty, in which case only
// defaults and environment variables apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("port out of range: %d", cfg.Port)
	}
	return cfg, nil
}

// Addr is the listen address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Address, c.Port)
}

// SlogLevel maps the configured level name onto slog, falling back to
// info for unknown names.
func (c *Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
