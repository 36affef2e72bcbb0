//go:build ebiten

package ui

import (
	"image/color"

	"lifeview/internal/input"
	"lifeview/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Locator resolves pointer positions to grid cells.
type Locator interface {
	Locate(p input.Point, bounds input.Rect) input.Cell
	CellSize() int
}

// Overlay outlines the cell under the cursor together with the footprint of
// the edit a click would make there. H toggles it.
type Overlay struct {
	loc     Locator
	bounds  input.Rect
	scale   int
	visible bool

	hovering bool
	cell     input.Cell
	intent   input.Intent
}

// NewOverlay constructs an overlay for a grid drawn within bounds at scale.
func NewOverlay(loc Locator, bounds input.Rect, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{loc: loc, bounds: bounds, scale: scale, visible: true}
}

// Update tracks the cursor and the held modifiers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
	mx, my := ebiten.CursorPosition()
	p := input.Point{X: float64(mx), Y: float64(my)}
	o.hovering = p.X >= o.bounds.X && p.Y >= o.bounds.Y &&
		p.X < o.bounds.X+o.bounds.W && p.Y < o.bounds.Y+o.bounds.H
	if !o.hovering {
		return
	}
	o.cell = o.loc.Locate(p, o.bounds)
	o.intent = input.Classify(Modifiers())
}

// Draw renders the outline onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible || !o.hovering {
		return
	}
	cs := o.loc.CellSize()
	rows, cols := footprint(o.intent)
	top := render.CellOrigin(o.cell.Row-rows, o.cell.Col-cols, cs)
	pitch := float32((cs + 1) * o.scale)
	s := float32(o.scale)
	x := float32(o.bounds.X) + float32(top.X-1)*s
	y := float32(o.bounds.Y) + float32(top.Y-1)*s
	w := pitch*float32(2*cols+1) + s
	h := pitch*float32(2*rows+1) + s

	col := intentColor(o.intent)
	vector.StrokeRect(screen, x, y, w, h, 2, col, false)
	if o.intent != input.IntentToggle {
		text.Draw(screen, o.intent.String(), basicfont.Face7x13, int(x), int(y)-4, col)
	}
}

// footprint returns the half extents, in cells, of the area an intent edits.
func footprint(i input.Intent) (rows, cols int) {
	switch i {
	case input.IntentGlider:
		return 1, 1
	case input.IntentPulsar:
		return 1, 4
	default:
		return 0, 0
	}
}

func intentColor(i input.Intent) color.RGBA {
	switch i {
	case input.IntentGlider:
		return color.RGBA{R: 40, G: 180, B: 90, A: 255}
	case input.IntentPulsar:
		return color.RGBA{R: 200, G: 60, B: 180, A: 255}
	default:
		return color.RGBA{R: 230, G: 170, B: 30, A: 255}
	}
}
