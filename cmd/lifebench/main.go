// Command lifebench runs an engine headless for a fixed number of frames and
// reports per-frame timings.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"lifeview/internal/app"
	"lifeview/internal/config"
	"lifeview/internal/telemetry"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	frames := flag.Int("frames", 600, "number of animation frames to run")
	out := flag.String("out", "", "directory for frames.csv (overrides telemetry.output_dir)")
	writeConfig := flag.String("write-config", "", "write the resolved configuration to this path")
	var overrides kvList
	flag.Var(&overrides, "set", "configuration override in key=value form (repeatable)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	for _, kv := range overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			log.Fatalf("override %q: expected key=value", kv)
		}
		if err := applyOverride(cfg, key, value); err != nil {
			log.Fatal(err)
		}
	}
	if *out != "" {
		cfg.Telemetry.OutputDir = *out
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if *writeConfig != "" {
		if err := cfg.WriteYAML(*writeConfig); err != nil {
			log.Fatal(err)
		}
	}

	summary, err := run(cfg, *frames)
	if err != nil {
		log.Fatal(err)
	}
	slog.Info("run complete", "engine", cfg.Engine.Name, "summary", summary)
}

// run plays frames animation frames and summarizes the recorded telemetry.
func run(cfg *config.Config, frames int) (telemetry.Summary, error) {
	engine, err := app.NewEngine(cfg)
	if err != nil {
		return telemetry.Summary{}, err
	}
	session, err := app.NewSession(engine, cfg)
	if err != nil {
		return telemetry.Summary{}, err
	}

	var buf bytes.Buffer
	recorder := telemetry.NewWriterRecorder(&buf)
	if cfg.Telemetry.OutputDir != "" {
		if recorder, err = telemetry.NewRecorder(cfg.Telemetry.OutputDir); err != nil {
			return telemetry.Summary{}, err
		}
	}
	session.SetRecorder(recorder)

	if frames > 0 {
		if err := session.Play(); err != nil {
			return telemetry.Summary{}, err
		}
		for i := 1; i < frames; i++ {
			if err := session.Refresh(); err != nil {
				return telemetry.Summary{}, err
			}
			session.MarkDisplayed()
		}
	}
	if err := session.Close(); err != nil {
		return telemetry.Summary{}, err
	}

	var src io.Reader = &buf
	if path := recorder.Path(); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return telemetry.Summary{}, err
		}
		defer f.Close()
		src = f
	}
	if recorder.Written() == 0 {
		return telemetry.Summary{}, nil
	}
	records, err := telemetry.ReadFrames(src)
	if err != nil {
		return telemetry.Summary{}, err
	}
	return telemetry.Summarize(records), nil
}

func applyOverride(cfg *config.Config, key, value string) error {
	switch key {
	case "engine", "engine.name":
		cfg.Engine.Name = value
		return nil
	case "rule", "engine.rule":
		cfg.Engine.Rule = value
		return nil
	case "seed", "engine.seed":
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("override %s: %w", key, err)
		}
		cfg.Engine.Seed = v
		return nil
	}

	var target *int
	switch key {
	case "w", "engine.width":
		target = &cfg.Engine.Width
	case "h", "engine.height":
		target = &cfg.Engine.Height
	case "cell", "view.cell_size":
		target = &cfg.View.CellSize
	case "speed", "loop.speed":
		target = &cfg.Loop.Speed
	case "max_speed", "loop.max_speed":
		target = &cfg.Loop.MaxSpeed
	case "log_every", "telemetry.log_every":
		target = &cfg.Telemetry.LogEvery
	default:
		return fmt.Errorf("override: unknown key %q", key)
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("override %s: %w", key, err)
	}
	*target = v
	return nil
}
