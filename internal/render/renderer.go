package render

import (
	"image"
	"image/color"

	"lifeview/internal/core"
)

// Palette holds the three colours used to draw a grid.
type Palette struct {
	Grid  color.RGBA
	Dead  color.RGBA
	Alive color.RGBA
}

// DefaultPalette matches a light grey lattice with black live cells.
func DefaultPalette() Palette {
	return Palette{
		Grid:  color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff},
		Dead:  color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Alive: color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	}
}

// Renderer owns a reusable raster sized for one grid and redraws it from
// packed cell views.
type Renderer struct {
	size     core.Size
	cellSize int
	palette  Palette
	img      *image.RGBA
	renders  uint64
}

// NewRenderer allocates the raster for a grid of the given size.
func NewRenderer(size core.Size, cellSize int, palette Palette) *Renderer {
	if cellSize <= 0 {
		cellSize = 1
	}
	px := SurfaceSize(size.W, size.H, cellSize)
	return &Renderer{
		size:     size,
		cellSize: cellSize,
		palette:  palette,
		img:      image.NewRGBA(image.Rect(0, 0, px.X, px.Y)),
	}
}

// Render draws the lattice and every cell from view.
func (r *Renderer) Render(view []byte) error {
	if err := DrawGrid(r.img, r.size.W, r.size.H, r.cellSize, r.palette.Grid); err != nil {
		return err
	}
	if err := DrawCells(r.img, view, r.size.W, r.size.H, r.cellSize, r.palette.Alive, r.palette.Dead); err != nil {
		return err
	}
	r.renders++
	return nil
}

// Image exposes the raster. It is overwritten by the next Render.
func (r *Renderer) Image() *image.RGBA { return r.img }

// Bounds returns the raster size in pixels.
func (r *Renderer) Bounds() image.Point { return r.img.Rect.Size() }

// CellSize returns the side length of a cell square in pixels.
func (r *Renderer) CellSize() int { return r.cellSize }

// Size returns the grid dimensions.
func (r *Renderer) Size() core.Size { return r.size }

// Renders counts successful Render calls.
func (r *Renderer) Renders() uint64 { return r.renders }
