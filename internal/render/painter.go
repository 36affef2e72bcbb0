//go:build ebiten

package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a CPU raster into a GPU image and draws it scaled.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
}

// NewGridPainter allocates a painter for a raster of size w*h pixels.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Upload copies the raster into the painter image. Mismatched sizes are
// ignored so a stale frame stays on screen instead of a garbled one.
func (gp *GridPainter) Upload(src *image.RGBA) {
	if src == nil || src.Rect.Dx() != gp.w || src.Rect.Dy() != gp.h {
		return
	}
	gp.img.WritePixels(src.Pix)
}

// Draw paints the last uploaded raster onto dst at the given scale.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int) {
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
