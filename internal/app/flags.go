package app

import (
	"flag"
	"fmt"

	"lifeview/internal/config"
)

// Flags represents the command-line parameters for the viewer. Values set on
// the command line override the configuration file.
type Flags struct {
	ConfigPath string

	Engine    string
	Width     int
	Height    int
	Rule      string
	Seed      int64
	CellSize  int
	Scale     int
	TPS       int
	Speed     int
	OutputDir string
	Autoplay  bool
}

// NewFlags returns Flags populated from the embedded defaults.
func NewFlags() *Flags {
	d := config.Default()
	return &Flags{
		Engine:    d.Engine.Name,
		Width:     d.Engine.Width,
		Height:    d.Engine.Height,
		Rule:      d.Engine.Rule,
		Seed:      d.Engine.Seed,
		CellSize:  d.View.CellSize,
		Scale:     d.View.Scale,
		TPS:       d.View.TPS,
		Speed:     d.Loop.Speed,
		OutputDir: d.Telemetry.OutputDir,
		Autoplay:  d.Loop.Autoplay,
	}
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", f.ConfigPath, "YAML configuration file")
	fs.StringVar(&f.Engine, "engine", f.Engine, "automaton to run")
	fs.IntVar(&f.Width, "w", f.Width, "grid width in cells")
	fs.IntVar(&f.Height, "h", f.Height, "grid height in cells")
	fs.StringVar(&f.Rule, "rule", f.Rule, "birth/survival rule such as B3/S23")
	fs.Int64Var(&f.Seed, "seed", f.Seed, "seed for the initial random state")
	fs.IntVar(&f.CellSize, "cell", f.CellSize, "cell side length in pixels")
	fs.IntVar(&f.Scale, "scale", f.Scale, "pixel scale multiplier")
	fs.IntVar(&f.TPS, "tps", f.TPS, "ticks per second")
	fs.IntVar(&f.Speed, "speed", f.Speed, "generations per frame")
	fs.StringVar(&f.OutputDir, "out", f.OutputDir, "directory for frames.csv")
	fs.BoolVar(&f.Autoplay, "autoplay", f.Autoplay, "start animating immediately")
}

// Resolve loads the configuration file and applies every flag that was set
// explicitly on fs.
func (f *Flags) Resolve(fs *flag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, err
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "engine":
			cfg.Engine.Name = f.Engine
		case "w":
			cfg.Engine.Width = f.Width
		case "h":
			cfg.Engine.Height = f.Height
		case "rule":
			cfg.Engine.Rule = f.Rule
		case "seed":
			cfg.Engine.Seed = f.Seed
		case "cell":
			cfg.View.CellSize = f.CellSize
		case "scale":
			cfg.View.Scale = f.Scale
		case "tps":
			cfg.View.TPS = f.TPS
		case "speed":
			cfg.Loop.Speed = f.Speed
		case "out":
			cfg.Telemetry.OutputDir = f.OutputDir
		case "autoplay":
			cfg.Loop.Autoplay = f.Autoplay
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
