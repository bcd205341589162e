package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
)

// Duration wraps time.Duration for TOML string parsing ("500ms", "1s").
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	return nil
}

// SampleConfig controls the background collector.
type SampleConfig struct {
	Interval    Duration `toml:"interval"`     // snapshot cadence (default: 500ms)
	StoragePath string   `toml:"storage_path"` // filesystem to report usage for (default: /)
	BatteryMAh  float64  `toml:"battery_mah"`  // pack capacity for time estimates (default: 4000)
	ProcRoot    string   `toml:"proc"`         // override for tests
	SysRoot     string   `toml:"sys"`          // override for tests
}

// DisplayConfig controls rendering.
type DisplayConfig struct {
	RenderInterval Duration `toml:"render_interval"` // frame cadence (default: 250ms)
	BrowserStart   string   `toml:"browser_start"`   // initial browser directory (default: $HOME)
}

// ThemeConfig holds optional color overrides. Empty strings use ANSI defaults.
// Values can be ANSI numbers ("1"), 256-palette numbers ("196"), or hex ("#ff0000").
type ThemeConfig struct {
	Fg       string `toml:"fg"`
	FgDim    string `toml:"fg_dim"`
	FgBright string `toml:"fg_bright"`
	Border   string `toml:"border"`
	Accent   string `toml:"accent"`
	Healthy  string `toml:"healthy"`
	Warning  string `toml:"warning"`
	Critical string `toml:"critical"`
	Graph    string `toml:"graph"`
	Cursor   string `toml:"cursor"`
}

// Config is the dashboard configuration.
type Config struct {
	Sample  SampleConfig  `toml:"sample"`
	Display DisplayConfig `toml:"display"`
	Theme   ThemeConfig   `toml:"theme"`
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/pulse/config.toml,
// falling back to ~/.config/pulse/config.toml if unset.
func DefaultConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "pulse", "config.toml")
}

// LoadConfig reads and parses a TOML config file. A missing file is not
// an error: the defaults are returned so the dashboard runs unconfigured.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	if cfg.Sample.Interval.Duration <= 0 {
		cfg.Sample.Interval.Duration = 500 * time.Millisecond
	}
	if cfg.Sample.StoragePath == "" {
		cfg.Sample.StoragePath = "/"
	}
	if cfg.Sample.BatteryMAh <= 0 {
		cfg.Sample.BatteryMAh = 4000
	}
	if cfg.Sample.ProcRoot == "" {
		cfg.Sample.ProcRoot = "/proc"
	}
	if cfg.Sample.SysRoot == "" {
		cfg.Sample.SysRoot = "/sys"
	}
	if cfg.Display.RenderInterval.Duration <= 0 {
		cfg.Display.RenderInterval.Duration = 250 * time.Millisecond
	}
	if cfg.Display.BrowserStart == "" {
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			home = "/"
		}
		cfg.Display.BrowserStart = home
	}
	return &cfg, nil
}

// BuildTheme returns a Theme starting from ANSI defaults with any
// non-empty ThemeConfig fields applied as overrides.
func BuildTheme(tc ThemeConfig) Theme {
	t := TerminalTheme()
	override := func(dst *lipgloss.Color, src string) {
		if src != "" {
			*dst = lipgloss.Color(src)
		}
	}
	override(&t.Fg, tc.Fg)
	override(&t.FgDim, tc.FgDim)
	override(&t.FgBright, tc.FgBright)
	override(&t.Border, tc.Border)
	override(&t.Accent, tc.Accent)
	override(&t.Healthy, tc.Healthy)
	override(&t.Warning, tc.Warning)
	override(&t.Critical, tc.Critical)
	override(&t.Graph, tc.Graph)
	override(&t.Cursor, tc.Cursor)
	return t
}
