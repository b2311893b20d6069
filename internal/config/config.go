// Package config loads tool configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all tool configuration.
type Config struct {
	Sandbox    SandboxConfig
	Translator TranslatorConfig
	Logging    LogConfig
}

// SandboxConfig holds JavaScript evaluation configuration.
type SandboxConfig struct {
	Engine  string        `envconfig:"PYJS_ENGINE" default:"node"` // "node" or "goja"
	NodeBin string        `envconfig:"PYJS_NODE_BIN" default:"node"`
	Timeout time.Duration `envconfig:"PYJS_EVAL_TIMEOUT" default:"30s"`
}

// TranslatorConfig holds the external translator command.
type TranslatorConfig struct {
	Command string `envconfig:"PYJS_TRANSLATOR" default:"pyjs-translate"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Sandbox: SandboxConfig{
			Engine:  "node",
			NodeBin: "node",
			Timeout: 30 * time.Second,
		},
		Translator: TranslatorConfig{
			Command: "pyjs-translate",
		},
		Logging: LogConfig{
			Level: "info",
		},
	}
}
