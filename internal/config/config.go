// Package config provides configuration loading for the viewer.
package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all viewer configuration.
type Config struct {
	Engine    EngineConfig    `yaml:"engine"`
	View      ViewConfig      `yaml:"view"`
	Loop      LoopConfig      `yaml:"loop"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// EngineConfig selects and sizes the automaton.
type EngineConfig struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Rule   string `yaml:"rule"` // empty keeps the engine's default rule
	Seed   int64  `yaml:"seed"`
}

// ViewConfig holds display settings.
type ViewConfig struct {
	CellSize int          `yaml:"cell_size"` // pixels per cell side, excluding the grid line
	Scale    int          `yaml:"scale"`     // window pixels per raster pixel
	TPS      int          `yaml:"tps"`
	HUDWidth int          `yaml:"hud_width"`
	Colors   ColorsConfig `yaml:"colors"`
}

// ColorsConfig holds #RRGGBB colours.
type ColorsConfig struct {
	Grid  string `yaml:"grid"`
	Dead  string `yaml:"dead"`
	Alive string `yaml:"alive"`
}

// LoopConfig holds animation settings.
type LoopConfig struct {
	Speed    int  `yaml:"speed"`     // steps per frame
	MaxSpeed int  `yaml:"max_speed"` // upper bound for the HUD control
	Autoplay bool `yaml:"autoplay"`
}

// TelemetryConfig controls frame statistics output.
type TelemetryConfig struct {
	OutputDir string `yaml:"output_dir"` // empty disables frames.csv
	LogEvery  int    `yaml:"log_every"`  // log a frame summary every N frames; 0 disables
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the embedded defaults. It panics if they are invalid.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Validate checks ranges and colour syntax.
func (c *Config) Validate() error {
	if c.Engine.Width <= 0 || c.Engine.Height <= 0 {
		return fmt.Errorf("config: grid must be positive, got %dx%d", c.Engine.Width, c.Engine.Height)
	}
	if c.View.CellSize <= 0 {
		return fmt.Errorf("config: cell_size must be positive, got %d", c.View.CellSize)
	}
	if c.View.Scale <= 0 {
		return fmt.Errorf("config: scale must be positive, got %d", c.View.Scale)
	}
	if c.Loop.MaxSpeed < 1 {
		return fmt.Errorf("config: max_speed must be at least 1, got %d", c.Loop.MaxSpeed)
	}
	if c.Loop.Speed < 0 || c.Loop.Speed > c.Loop.MaxSpeed {
		return fmt.Errorf("config: speed %d outside [0, %d]", c.Loop.Speed, c.Loop.MaxSpeed)
	}
	for name, hex := range map[string]string{"grid": c.View.Colors.Grid, "dead": c.View.Colors.Dead, "alive": c.View.Colors.Alive} {
		if _, err := ParseHexColor(hex); err != nil {
			return fmt.Errorf("config: colors.%s: %w", name, err)
		}
	}
	return nil
}

// EngineOptions renders the engine section as the string map engine
// factories accept.
func (c *Config) EngineOptions() map[string]string {
	opts := map[string]string{
		"w": strconv.Itoa(c.Engine.Width),
		"h": strconv.Itoa(c.Engine.Height),
	}
	if c.Engine.Rule != "" {
		opts["rule"] = c.Engine.Rule
	}
	return opts
}

// WriteYAML saves the configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA".
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
