package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"netdiag/internal/analysis"
	"netdiag/internal/ping"
)

// Config holds all configuration for netdiag
type Config struct {
	Targets       []string            `yaml:"targets"`
	Count         int                 `yaml:"count"`
	Timeout       time.Duration       `yaml:"timeout"`
	Interval      time.Duration       `yaml:"interval"`
	DatabasePath  string              `yaml:"database"`
	Port          int                 `yaml:"port"`
	LogLevel      string              `yaml:"log_level"`
	Platform      string              `yaml:"platform"`
	RetentionDays int                 `yaml:"retention_days"`
	Thresholds    analysis.Thresholds `yaml:"thresholds"`
}

// Default returns the configuration used when nothing else is set
func Default() Config {
	return Config{
		Targets:       []string{"8.8.8.8", "1.1.1.1"},
		Count:         5,
		Timeout:       1 * time.Second,
		Interval:      60 * time.Second,
		DatabasePath:  "netdiag.db",
		Port:          8080,
		LogLevel:      "info",
		Platform:      "auto",
		RetentionDays: 30,
		Thresholds:    analysis.DefaultThresholds(),
	}
}

// DefaultPath returns <user config dir>/netdiag/config.yaml
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}
	return filepath.Join(dir, "netdiag", "config.yaml"), nil
}

// Load reads the YAML config at path, or at DefaultPath when path is empty.
// Keys missing from the file keep their default values. A missing file is
// created with the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logrus.Info("[ CONFIG ] ", path, " not found, creating default config")
			if err := Save(path, cfg); err != nil {
				return Config{}, fmt.Errorf("create default config: %w", err)
			}
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating parent directories
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return fmt.Errorf("at least one target must be specified")
	}
	for _, t := range c.Targets {
		if t == "" {
			return fmt.Errorf("target cannot be empty")
		}
	}
	if c.Count <= 0 {
		return fmt.Errorf("count must be positive")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database path cannot be empty")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if _, err := ping.ParsePlatform(c.Platform); err != nil {
		return err
	}
	if c.RetentionDays < 1 {
		return fmt.Errorf("retention days must be at least 1")
	}
	if err := c.Thresholds.Validate(); err != nil {
		return err
	}
	return nil
}

// PingPlatform resolves the configured platform to a parser grammar
func (c *Config) PingPlatform() (ping.Platform, error) {
	return ping.ParsePlatform(c.Platform)
}

// Level returns the logrus level, info when unset or invalid
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
