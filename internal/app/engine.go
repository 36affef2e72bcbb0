package app

import (
	"fmt"
	"sort"
	"strings"

	"lifeview/internal/config"
	"lifeview/internal/core"
	"lifeview/internal/sims/life"
)

// NewEngine looks up the configured engine, builds it and seeds its initial
// state.
func NewEngine(cfg *config.Config) (core.Engine, error) {
	factory, ok := core.Engines()[cfg.Engine.Name]
	if !ok {
		return nil, fmt.Errorf("unknown engine %q (available: %s)", cfg.Engine.Name, strings.Join(EngineNames(), ", "))
	}
	if cfg.Engine.Rule != "" {
		if _, err := life.ParseRule(cfg.Engine.Rule); err != nil {
			return nil, err
		}
	}
	engine := factory(cfg.EngineOptions())
	engine.Reset(cfg.Engine.Seed)
	return engine, nil
}

// EngineNames lists registered engines in sorted order.
func EngineNames() []string {
	names := make([]string, 0, len(core.Engines()))
	for name := range core.Engines() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
