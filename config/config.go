// Package config provides configuration parsing for sysdeck.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the sysdeck configuration.
type Config struct {
	// Poll holds sampling settings.
	Poll PollConfig `yaml:"poll"`

	// Storage holds filesystem reporting settings.
	Storage StorageConfig `yaml:"storage"`

	// Display holds TUI rendering settings.
	Display DisplayConfig `yaml:"display"`

	// Monitor holds external system monitor launch settings.
	Monitor MonitorConfig `yaml:"monitor"`

	// Serve holds HTTP server settings for serve mode.
	Serve ServeConfig `yaml:"serve"`
}

// PollConfig holds sampling settings.
type PollConfig struct {
	// Interval is a duration string (e.g. "2s") between snapshot polls.
	Interval string `yaml:"interval"`
	// CacheTTL is a duration string bounding the staleness of
	// shell-backed GPU and network lookups.
	CacheTTL string `yaml:"cache_ttl"`
	// ProbeTimeout is a duration string capping each shell-backed query.
	ProbeTimeout string `yaml:"probe_timeout"`
}

// StorageConfig holds filesystem reporting settings.
type StorageConfig struct {
	// Volume is the mount point whose usage is reported.
	Volume string `yaml:"volume"`
}

// DisplayConfig holds TUI rendering settings.
type DisplayConfig struct {
	// Theme selects the display theme: "dark" or "light".
	Theme string `yaml:"theme"`
	// WarnPercent is the gauge threshold where colors shift to warning.
	WarnPercent float64 `yaml:"warn_percent"`
	// CritPercent is the gauge threshold where colors shift to critical.
	CritPercent float64 `yaml:"crit_percent"`
}

// MonitorConfig holds external system monitor launch settings.
type MonitorConfig struct {
	// Candidates is the probe order of monitor executables. Empty uses
	// the built-in candidate list.
	Candidates []string `yaml:"candidates"`
}

// ServeConfig holds HTTP server settings for serve mode.
type ServeConfig struct {
	// Addr is the listen address, e.g. "127.0.0.1:8093".
	Addr string `yaml:"addr"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Poll: PollConfig{
			Interval:     "2s",
			CacheTTL:     "5s",
			ProbeTimeout: "5s",
		},
		Storage: StorageConfig{
			Volume: "/",
		},
		Display: DisplayConfig{
			Theme:       "dark",
			WarnPercent: 70,
			CritPercent: 90,
		},
		Monitor: MonitorConfig{
			Candidates: nil,
		},
		Serve: ServeConfig{
			Addr: "127.0.0.1:8093",
		},
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "sysdeck", "config.yaml")
}

// LoadConfig loads configuration from a YAML file, merging with defaults.
// A missing file is not an error; defaults are returned.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration for required fields and logical consistency.
func (c *Config) Validate() error {
	interval, err := time.ParseDuration(c.Poll.Interval)
	if err != nil {
		return fmt.Errorf("poll.interval: %w", err)
	}
	if interval < 100*time.Millisecond {
		return fmt.Errorf("poll.interval must be at least 100ms, got %s", c.Poll.Interval)
	}

	if _, err := time.ParseDuration(c.Poll.CacheTTL); err != nil {
		return fmt.Errorf("poll.cache_ttl: %w", err)
	}
	if _, err := time.ParseDuration(c.Poll.ProbeTimeout); err != nil {
		return fmt.Errorf("poll.probe_timeout: %w", err)
	}

	if c.Storage.Volume == "" {
		return fmt.Errorf("storage.volume is required")
	}

	if c.Display.Theme != "dark" && c.Display.Theme != "light" {
		return fmt.Errorf("display.theme must be 'dark' or 'light', got %q", c.Display.Theme)
	}
	if c.Display.WarnPercent <= 0 || c.Display.WarnPercent > 100 {
		return fmt.Errorf("display.warn_percent must be in (0, 100], got %g", c.Display.WarnPercent)
	}
	if c.Display.CritPercent <= c.Display.WarnPercent || c.Display.CritPercent > 100 {
		return fmt.Errorf("display.crit_percent must be in (warn_percent, 100], got %g", c.Display.CritPercent)
	}

	if c.Serve.Addr == "" {
		return fmt.Errorf("serve.addr is required")
	}

	return nil
}

// PollInterval returns the parsed poll interval. Call Validate first.
func (c *Config) PollInterval() time.Duration {
	d, _ := time.ParseDuration(c.Poll.Interval)
	return d
}

// CacheTTL returns the parsed cache TTL. Call Validate first.
func (c *Config) CacheTTL() time.Duration {
	d, _ := time.ParseDuration(c.Poll.CacheTTL)
	return d
}

// ProbeTimeout returns the parsed probe timeout. Call Validate first.
func (c *Config) ProbeTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Poll.ProbeTimeout)
	return d
}

// SaveConfig saves configuration to a YAML file.
func SaveConfig(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
