// Package config loads the TeamDesk configuration from YAML, .env files and
// environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Storage       StorageConfig       `yaml:"storage"`
	Logging       LoggingConfig       `yaml:"logging"`
	Auth          AuthConfig          `yaml:"auth"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Metrics       MetricsConfig       `yaml:"metrics"`
}

// StorageConfig selects and locates the persistence backend.
type StorageConfig struct {
	Backend StorageBackend `yaml:"backend"` // "json" or "sqlite"
	Path    string         `yaml:"path"`
}

// StorageBackend enumerates supported persistence backends.
type StorageBackend string

const (
	StorageJSON   StorageBackend = "json"
	StorageSQLite StorageBackend = "sqlite"
)

// LoggingConfig controls slog output.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// AuthConfig controls the cosmetic delay before login/register complete.
type AuthConfig struct {
	DelayMS int `yaml:"delay_ms"`
}

// Delay returns the configured auth delay.
func (a AuthConfig) Delay() time.Duration {
	return time.Duration(a.DelayMS) * time.Millisecond
}

// NotificationsConfig controls the reminder daemon.
type NotificationsConfig struct {
	ScanInterval time.Duration `yaml:"scan_interval"`
}

// MetricsConfig toggles Prometheus counters.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: StorageJSON,
			Path:    "teamdesk-data/store.json",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Notifications: NotificationsConfig{
			ScanInterval: 15 * time.Minute,
		},
	}
}

// Load reads the configuration from path, layering defaults, an optional
// .env file and environment overrides. A missing file is not an error; the
// defaults apply.
func Load(path string) (*Config, error) {
	// Best effort: absent .env files are fine.
	_ = godotenv.Load()

	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(cfg)
			return cfg, cfg.Validate()
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides config fields from TEAMDESK_* environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("TEAMDESK_STORAGE_BACKEND"); v != "" {
		cfg.Storage.Backend = StorageBackend(v)
	}
	if v := os.Getenv("TEAMDESK_STORAGE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("TEAMDESK_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("TEAMDESK_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("TEAMDESK_AUTH_DELAY_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.Auth.DelayMS = ms
		}
	}
	if v := os.Getenv("TEAMDESK_METRICS_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Metrics.Enabled = enabled
		}
	}
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case StorageJSON, StorageSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("storage path must not be empty")
	}
	if c.Auth.DelayMS < 0 {
		return fmt.Errorf("auth delay must not be negative")
	}
	return nil
}
