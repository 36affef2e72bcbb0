//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"lifeview/internal/app"
	"lifeview/internal/telemetry"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := flags.Resolve(flag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}
	engine, err := app.NewEngine(cfg)
	if err != nil {
		log.Fatal(err)
	}
	session, err := app.NewSession(engine, cfg)
	if err != nil {
		log.Fatal(err)
	}
	recorder, err := telemetry.NewRecorder(cfg.Telemetry.OutputDir)
	if err != nil {
		log.Fatal(err)
	}
	session.SetRecorder(recorder)
	defer session.Close()

	if cfg.Loop.Autoplay {
		if err := session.Play(); err != nil {
			log.Fatal(err)
		}
	}

	title := "lifeview - " + engine.Name()
	err = app.Run(session, title, cfg.View.Scale, cfg.View.HUDWidth, cfg.View.TPS)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	slog.Info("closed", "generation", session.Generation(), "live", session.Live(), "frames", recorder.Written())
}
