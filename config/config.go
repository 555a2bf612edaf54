package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/deevus/sensordash/internal/sensor"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	Dashboard DashboardConfig `toml:"dashboard" yaml:"dashboard"`
	Sensor    SensorConfig    `toml:"sensor" yaml:"sensor"`
	Log       LogConfig       `toml:"log" yaml:"log"`
}

// DashboardConfig controls refresh timing and the seeded history.
type DashboardConfig struct {
	RefreshInterval time.Duration `toml:"refresh_interval" yaml:"refresh_interval"`
	HistorySize     int           `toml:"history_size" yaml:"history_size"`
	HistorySpacing  time.Duration `toml:"history_spacing" yaml:"history_spacing"`
	TimeFormat      string        `toml:"time_format" yaml:"time_format"`
	Seed            uint64        `toml:"seed" yaml:"seed"`
}

// SensorConfig holds the ranges simulated values are drawn from.
type SensorConfig struct {
	Temperature sensor.Range `toml:"temperature" yaml:"temperature"`
	Humidity    sensor.Range `toml:"humidity" yaml:"humidity"`
}

// LogConfig controls where diagnostic logs are written. The terminal
// belongs to the UI, so an empty Path discards logs.
type LogConfig struct {
	Path  string `toml:"path" yaml:"path"`
	Level string `toml:"level" yaml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Dashboard: DashboardConfig{
			RefreshInterval: 5 * time.Second,
			HistorySize:     sensor.DefaultHistorySize,
			HistorySpacing:  sensor.DefaultHistorySpacing,
			TimeFormat:      sensor.DefaultTimeLayout,
		},
		Sensor: SensorConfig{
			Temperature: sensor.TemperatureRange,
			Humidity:    sensor.HumidityRange,
		},
		Log: LogConfig{Level: "info"},
	}
}

// DefaultPath returns the default config file path using XDG conventions.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "sensordash", "config.toml")
}

// Load reads path if it exists and falls back to defaults otherwise.
// It is meant for the default path, where a missing file is normal.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads and parses the config file at the given path. Files ending
// in .yaml or .yml are parsed as YAML, everything else as TOML. Unset fields
// keep their defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	default:
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}
	cfg.Log.Path = expandPath(cfg.Log.Path)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if c.Dashboard.RefreshInterval <= 0 {
		return fmt.Errorf("dashboard.refresh_interval must be positive, got %s", c.Dashboard.RefreshInterval)
	}
	if c.Dashboard.HistorySize < 1 || c.Dashboard.HistorySize > sensor.DefaultHistorySize {
		return fmt.Errorf("dashboard.history_size must be between 1 and %d, got %d",
			sensor.DefaultHistorySize, c.Dashboard.HistorySize)
	}
	if c.Dashboard.HistorySpacing <= 0 {
		return fmt.Errorf("dashboard.history_spacing must be positive, got %s", c.Dashboard.HistorySpacing)
	}
	if c.Dashboard.TimeFormat == "" {
		return fmt.Errorf("dashboard.time_format must not be empty")
	}
	for name, r := range map[string]sensor.Range{
		"sensor.temperature": c.Sensor.Temperature,
		"sensor.humidity":    c.Sensor.Humidity,
	} {
		if r.Min >= r.Max {
			return fmt.Errorf("%s: min (%v) must be below max (%v)", name, r.Min, r.Max)
		}
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses Log.Level. An empty level means info.
func (c *Config) LogLevel() (zerolog.Level, error) {
	if c.Log.Level == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}

// expandPath expands ~ to $HOME and then expands all environment variables.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		path = "$HOME" + path[1:]
	}
	return os.ExpandEnv(path)
}
