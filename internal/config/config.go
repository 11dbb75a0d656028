// Package config loads the dashboard configuration from TOML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Widget kinds accepted in a layout row.
const (
	WidgetDisk = "disk"
	WidgetTemp = "temp"
)

// KnownWidgets lists every widget kind the dashboard can lay out.
var KnownWidgets = []string{WidgetDisk, WidgetTemp}

// MinRefreshRate is the fastest allowed collection interval.
const MinRefreshRate = 250 * time.Millisecond

// Config represents the dashboard configuration.
type Config struct {
	RefreshRate   Duration  `toml:"refresh_rate"`
	Expanded      bool      `toml:"expanded"`
	DefaultWidget string    `toml:"default_widget"`
	Log           LogConfig `toml:"log"`
	Rows          []Row     `toml:"row"`
}

// LogConfig controls log output.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Row is one horizontal band of the layout grid; widgets share its width
// equally, left to right.
type Row struct {
	Widgets []string `toml:"widgets"`
}

// Duration is a time.Duration that decodes from strings like "1s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "sysdash", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "sysdash", "config.toml")
}

// DefaultLogPath returns the default log file path.
func DefaultLogPath() string {
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		return filepath.Join(state, "sysdash", "sysdash.log")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "sysdash", "sysdash.log")
}

// Default returns the default configuration: two disk tables side by side
// above a temperature table.
func Default() *Config {
	return &Config{
		RefreshRate:   Duration{time.Second},
		DefaultWidget: WidgetDisk,
		Log:           LogConfig{Level: "info"},
		Rows: []Row{
			{Widgets: []string{WidgetDisk, WidgetDisk}},
			{Widgets: []string{WidgetTemp}},
		},
	}
}

// Load reads the config at path (DefaultPath if empty). A missing file
// yields Default.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes TOML data, fills defaults for missing values, and validates.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	def := Default()
	if cfg.RefreshRate.Duration == 0 {
		cfg.RefreshRate = def.RefreshRate
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if len(cfg.Rows) == 0 {
		cfg.Rows = def.Rows
	}
	if cfg.DefaultWidget == "" {
		cfg.DefaultWidget = def.DefaultWidget
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the layout and rates.
func (c *Config) Validate() error {
	if c.RefreshRate.Duration < MinRefreshRate {
		return fmt.Errorf("refresh_rate %s is below minimum %s", c.RefreshRate.Duration, MinRefreshRate)
	}
	if len(c.Rows) == 0 {
		return errors.New("layout has no rows")
	}
	for i, row := range c.Rows {
		if len(row.Widgets) == 0 {
			return fmt.Errorf("row %d has no widgets", i+1)
		}
		for _, w := range row.Widgets {
			if !isKnown(w) {
				return fmt.Errorf("row %d: unknown widget %q", i+1, w)
			}
		}
	}
	if c.DefaultWidget != "" && !isKnown(c.DefaultWidget) {
		return fmt.Errorf("unknown default_widget %q", c.DefaultWidget)
	}
	return nil
}

// Grid returns the layout as widget kinds per row.
func (c *Config) Grid() [][]string {
	grid := make([][]string, len(c.Rows))
	for i, row := range c.Rows {
		grid[i] = append([]string(nil), row.Widgets...)
	}
	return grid
}

func isKnown(kind string) bool {
	for _, k := range KnownWidgets {
		if k == kind {
			return true
		}
	}
	return false
}
