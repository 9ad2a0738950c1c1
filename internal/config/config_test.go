package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"no targets", func(c *Config) { c.Targets = nil }, "at least one target"},
		{"empty target", func(c *Config) { c.Targets = []string{"8.8.8.8", ""} }, "target cannot be empty"},
		{"zero count", func(c *Config) { c.Count = 0 }, "count must be positive"},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, "timeout must be positive"},
		{"negative interval", func(c *Config) { c.Interval = -time.Second }, "interval must be positive"},
		{"empty database", func(c *Config) { c.DatabasePath = "" }, "database path cannot be empty"},
		{"port zero", func(c *Config) { c.Port = 0 }, "port must be between"},
		{"port too high", func(c *Config) { c.Port = 70000 }, "port must be between"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log level"},
		{"bad platform", func(c *Config) { c.Platform = "plan9" }, "unknown platform"},
		{"no retention", func(c *Config) { c.RetentionDays = 0 }, "retention days"},
		{"bad thresholds", func(c *Config) { c.Thresholds.HighLossPct = 0 }, "high_loss_pct"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	if !strings.Contains(string(data), "timeout: 1s") {
		t.Errorf("durations not written as strings:\n%s", data)
	}

	again, err := Load(path)
	if err != nil {
		t.Fatalf("second Load() error = %v", err)
	}
	if !reflect.DeepEqual(again, cfg) {
		t.Errorf("reloaded config = %+v, want %+v", again, cfg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `targets:
  - example.com
  - gateway
count: 10
timeout: 500ms
thresholds:
  high_latency_ms: 80
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(cfg.Targets, []string{"example.com", "gateway"}) {
		t.Errorf("Targets = %v", cfg.Targets)
	}
	if cfg.Count != 10 {
		t.Errorf("Count = %d, want 10", cfg.Count)
	}
	if cfg.Timeout != 500*time.Millisecond {
		t.Errorf("Timeout = %v, want 500ms", cfg.Timeout)
	}
	if cfg.Thresholds.HighLatencyMs != 80 {
		t.Errorf("HighLatencyMs = %v, want 80", cfg.Thresholds.HighLatencyMs)
	}
	if cfg.Thresholds.HighLossPct != Default().Thresholds.HighLossPct {
		t.Errorf("HighLossPct = %v, want default", cfg.Thresholds.HighLossPct)
	}
	if cfg.Interval != Default().Interval || cfg.Port != Default().Port {
		t.Errorf("unset keys lost their defaults: %+v", cfg)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("targets: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() = nil error, want parse error")
	}
}

func TestLevel(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "debug"
	if got := cfg.Level().String(); got != "debug" {
		t.Errorf("Level() = %s, want debug", got)
	}
	cfg.LogLevel = "nonsense"
	if got := cfg.Level().String(); got != "info" {
		t.Errorf("Level() = %s, want info fallback", got)
	}
}
