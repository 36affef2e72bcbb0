//go:build ebiten

package ui

import (
	"lifeview/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
)

// Modifiers samples the modifier keys currently held. Command counts as
// Control so macOS users can Cmd-click.
func Modifiers() input.Modifiers {
	var mods input.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= input.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= input.ModShift
	}
	return mods
}
