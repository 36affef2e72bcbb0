package render

import (
	"image"
	"image/color"
)

// fillRect paints the w x h rectangle at (x, y) directly into img.Pix. The
// caller guarantees the rectangle lies inside img.
func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	row := img.PixOffset(x, y)
	for dy := 0; dy < h; dy++ {
		px := img.Pix[row : row+4*w : row+4*w]
		for i := 0; i < len(px); i += 4 {
			px[i+0] = c.R
			px[i+1] = c.G
			px[i+2] = c.B
			px[i+3] = c.A
		}
		row += img.Stride
	}
}

// hline paints a one pixel tall line of length n starting at (x, y).
func hline(img *image.RGBA, x, y, n int, c color.RGBA) {
	fillRect(img, x, y, n, 1, c)
}

// vline paints a one pixel wide line of length n starting at (x, y).
func vline(img *image.RGBA, x, y, n int, c color.RGBA) {
	fillRect(img, x, y, 1, n, c)
}
