package input

import (
	"fmt"
	"image"

	"lifeview/internal/core"
)

// PointerEvent is a pointer press on the raster.
type PointerEvent struct {
	Pos  Point
	Mods Modifiers
}

// Edit is one mutation applied by the router.
type Edit struct {
	Intent Intent
	Cell   Cell
}

// Renderer redraws the raster from a packed snapshot.
type Renderer interface {
	Render(view []byte) error
}

// Router turns pointer presses and board commands into engine mutations and
// redraws immediately after each one, independent of the animation loop.
type Router struct {
	engine   core.Engine
	renderer Renderer
	surface  image.Point
	cellSize int
}

// NewRouter binds a router to an engine and the renderer that owns a raster
// of surface pixels with the given cell size.
func NewRouter(engine core.Engine, renderer Renderer, surface image.Point, cellSize int) *Router {
	return &Router{engine: engine, renderer: renderer, surface: surface, cellSize: cellSize}
}

// Locate maps a pointer position to a grid cell without mutating anything.
func (r *Router) Locate(p Point, bounds Rect) Cell {
	return MapPointer(p, bounds, r.surface, r.cellSize, r.engine.Size())
}

// PointerDown applies the single mutation selected by the event's modifiers
// at the cell under the pointer and redraws.
func (r *Router) PointerDown(ev PointerEvent, bounds Rect) (Edit, error) {
	edit := Edit{Intent: Classify(ev.Mods), Cell: r.Locate(ev.Pos, bounds)}
	return edit, r.Apply(edit)
}

// Apply performs one edit and redraws.
func (r *Router) Apply(e Edit) error {
	switch e.Intent {
	case IntentGlider:
		r.engine.StampGlider(e.Cell.Row, e.Cell.Col)
	case IntentPulsar:
		r.engine.StampPulsarPrecursor(e.Cell.Row, e.Cell.Col)
	case IntentToggle:
		r.engine.Toggle(e.Cell.Row, e.Cell.Col)
	default:
		return fmt.Errorf("input: unknown intent %v", e.Intent)
	}
	return r.refresh()
}

// Clear kills every cell and redraws.
func (r *Router) Clear() error {
	r.engine.Clear()
	return r.refresh()
}

// Reinitialize reseeds the engine and redraws.
func (r *Router) Reinitialize(seed int64) error {
	r.engine.Reset(seed)
	return r.refresh()
}

// refresh fetches a fresh view; the engine may have replaced its storage.
func (r *Router) refresh() error {
	if err := r.renderer.Render(r.engine.Cells()); err != nil {
		return fmt.Errorf("input: redraw after edit: %w", err)
	}
	return nil
}
