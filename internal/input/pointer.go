package input

import (
	"image"
	"math"

	"lifeview/internal/core"
)

// Point is a pointer position in host coordinates.
type Point struct {
	X, Y float64
}

// Rect is the on-screen placement of the raster in host coordinates. Its
// size may differ from the raster's pixel size when the host scales it.
type Rect struct {
	X, Y float64
	W, H float64
}

// Cell is a logical grid address.
type Cell struct {
	Row, Col int
}

// MapPointer converts a pointer position into the grid cell under it. The
// position is rescaled from host units to raster pixels, divided by the cell
// pitch and clamped into the grid, so points on or past any edge resolve to
// the nearest border cell.
func MapPointer(p Point, bounds Rect, surface image.Point, cellSize int, size core.Size) Cell {
	scaleX, scaleY := 1.0, 1.0
	if bounds.W > 0 {
		scaleX = float64(surface.X) / bounds.W
	}
	if bounds.H > 0 {
		scaleY = float64(surface.Y) / bounds.H
	}
	px := (p.X - bounds.X) * scaleX
	py := (p.Y - bounds.Y) * scaleY

	pitch := float64(cellSize + 1)
	row := clampIndex(math.Floor(py/pitch), size.H)
	col := clampIndex(math.Floor(px/pitch), size.W)
	return Cell{Row: row, Col: col}
}

func clampIndex(v float64, n int) int {
	if n <= 0 || math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > float64(n-1) {
		return n - 1
	}
	return int(v)
}
