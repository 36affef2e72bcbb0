//go:build !ebiten

package app

import "errors"

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("app: the window requires building with the 'ebiten' tag")

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New returns a placeholder in the headless build.
func New(*Session, int, int) *Game { return &Game{} }

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error { return ErrNoGUI }

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }

// Run reports that the GUI build tag is missing.
func Run(*Session, string, int, int, int) error { return ErrNoGUI }
