// Package config loads the gearset YAML configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPath overrides the default config file location.
const EnvPath = "GEARSET_CONFIG"

// DefaultPath is used when EnvPath is unset.
const DefaultPath = "config/gearset.yaml"

// Config holds all configuration for the gearset tool.
type Config struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// CatalogPath points at a catalog YAML; empty uses the embedded sample.
	CatalogPath string `yaml:"catalog_path"`

	// Watch mode
	SnapshotDir  string        `yaml:"snapshot_dir"`
	PollInterval time.Duration `yaml:"poll_interval"`
	Workers      int           `yaml:"workers"` // 0 = runtime.NumCPU()

	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Default returns Config with sensible defaults.
func Default() Config {
	return Config{
		LogLevel:     "info",
		SnapshotDir:  "snapshots",
		PollInterval: 2 * time.Second,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "gearset",
			Password: "gearset",
			DBName:   "gearset",
			SSLMode:  "disable",
		},
	}
}

// Path returns the config path from the environment, or DefaultPath.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// Load loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.PollInterval <= 0 {
		return cfg, fmt.Errorf("config %s: poll_interval must be positive, got %s", path, cfg.PollInterval)
	}
	if cfg.Workers < 0 {
		return cfg, fmt.Errorf("config %s: workers must not be negative, got %d", path, cfg.Workers)
	}

	return cfg, nil
}
