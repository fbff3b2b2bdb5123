// Package config provides configuration management for the pdoq CLI.
//
// Config file locations (priority order):
//  1. $PDOQ_CONFIG
//  2. ./pdoq.yaml
//  3. $XDG_CONFIG_HOME/pdoq/config.yaml
//  4. ~/.config/pdoq/config.yaml
//  5. /etc/pdoq/config.yaml
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration.
type Config struct {
	Version  int            `yaml:"version"`
	Database DatabaseConfig `yaml:"database"`
	Errors   ErrorConfig    `yaml:"errors"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig names the driver and data source. Credentials may live in
// the DSN itself or in the separate user/password fields; ConnString folds
// them together.
type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	DSN      string `yaml:"dsn"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// ErrorConfig controls error report rendering (html or text).
type ErrorConfig struct {
	Format string `yaml:"format"`
}

// LogConfig controls CLI logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load finds and loads the config file, or returns defaults if none found.
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, path, nil
}

// Save writes config to the specified path.
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// DefaultConfig returns sensible defaults for a new installation.
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Database: DatabaseConfig{Driver: "sqlite", DSN: "./pdoq.db"},
		Errors:   ErrorConfig{Format: "html"},
		Log:      LogConfig{Level: "info"},
	}
}

// applyDefaults fills in missing values with defaults.
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.DSN == "" {
		c.Database.DSN = "./pdoq.db"
	}
	if c.Errors.Format == "" {
		c.Errors.Format = "html"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// ConnString folds the user/password fields into the DSN. URL-style DSNs
// (postgres://…) get a userinfo component; key@host styles get a user:pass@
// prefix; DSNs that already carry credentials pass through unchanged.
func (d DatabaseConfig) ConnString() string {
	if d.User == "" {
		return d.DSN
	}

	if strings.Contains(d.DSN, "://") {
		u, err := url.Parse(d.DSN)
		if err != nil {
			return d.DSN
		}
		if u.User == nil {
			u.User = url.UserPassword(d.User, d.Password)
		}
		return u.String()
	}

	if strings.Contains(d.DSN, "@") {
		return d.DSN
	}
	return fmt.Sprintf("%s:%s@%s", d.User, d.Password, d.DSN)
}
