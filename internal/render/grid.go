package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"lifeview/internal/core"
)

var (
	// ErrShortBuffer is returned when a packed cell view holds fewer bytes than
	// the grid dimensions require.
	ErrShortBuffer = errors.New("render: cell buffer shorter than grid")
	// ErrSurfaceTooSmall is returned when the raster cannot hold the grid.
	ErrSurfaceTooSmall = errors.New("render: surface smaller than grid layout")
)

// SurfaceSize returns the pixel size of a raster holding a w x h grid with a
// one pixel border around every cell.
func SurfaceSize(w, h, cellSize int) image.Point {
	return image.Pt((cellSize+1)*w+1, (cellSize+1)*h+1)
}

// CellOrigin returns the top-left pixel of the cell at (row, col).
func CellOrigin(row, col, cellSize int) image.Point {
	return image.Pt(col*(cellSize+1)+1, row*(cellSize+1)+1)
}

// DrawGrid draws w+1 vertical and h+1 horizontal one pixel lines at
// multiples of cellSize+1.
func DrawGrid(img *image.RGBA, w, h, cellSize int, c color.RGBA) error {
	if err := checkSurface(img, w, h, cellSize); err != nil {
		return err
	}
	size := SurfaceSize(w, h, cellSize)
	pitch := cellSize + 1
	for i := 0; i <= w; i++ {
		vline(img, img.Rect.Min.X+i*pitch, img.Rect.Min.Y, size.Y, c)
	}
	for j := 0; j <= h; j++ {
		hline(img, img.Rect.Min.X, img.Rect.Min.Y+j*pitch, size.X, c)
	}
	return nil
}

// DrawCells fills every cell square with alive or dead according to its bit
// in view. Nothing is drawn when view is too short for the grid.
func DrawCells(img *image.RGBA, view []byte, w, h, cellSize int, alive, dead color.RGBA) error {
	if need := core.PackedLen(w, h); len(view) < need {
		return fmt.Errorf("%w: have %d bytes, need %d for %dx%d", ErrShortBuffer, len(view), need, w, h)
	}
	if err := checkSurface(img, w, h, cellSize); err != nil {
		return err
	}
	base := img.Rect.Min
	idx := 0
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			c := dead
			if core.IsSet(view, idx) {
				c = alive
			}
			o := CellOrigin(row, col, cellSize)
			fillRect(img, base.X+o.X, base.Y+o.Y, cellSize, cellSize, c)
			idx++
		}
	}
	return nil
}

func checkSurface(img *image.RGBA, w, h, cellSize int) error {
	if img == nil || w <= 0 || h <= 0 || cellSize <= 0 {
		return fmt.Errorf("%w: %dx%d grid, cell size %d", ErrSurfaceTooSmall, w, h, cellSize)
	}
	need := SurfaceSize(w, h, cellSize)
	have := img.Rect.Size()
	if have.X < need.X || have.Y < need.Y {
		return fmt.Errorf("%w: have %v, need %v", ErrSurfaceTooSmall, have, need)
	}
	return nil
}
