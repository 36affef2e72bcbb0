//go:build !ebiten

package ui

import "lifeview/internal/input"

// Locator resolves pointer positions to grid cells.
type Locator interface {
	Locate(p input.Point, bounds input.Rect) input.Cell
	CellSize() int
}

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(Locator, input.Rect, int) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}

// Modifiers reports no held keys in headless builds.
func Modifiers() input.Modifiers { return 0 }
