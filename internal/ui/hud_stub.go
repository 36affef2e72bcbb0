//go:build !ebiten

package ui

import "lifeview/internal/core"

// Source feeds the HUD.
type Source interface {
	core.ActionProvider
	Parameters() core.ParameterSnapshot
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(Source, string, int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) error { return nil }

// Contains always reports false in the headless build.
func (h *HUD) Contains(int, int) bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
