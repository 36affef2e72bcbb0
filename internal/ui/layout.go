package ui

import "image"

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statusLine     = 16
	controlsTop    = panelPadding + headerBaseline + 14
	actionHeight   = 26
	actionsPerRow  = 2
)

// controlRects places the -/+ buttons of one adjustable parameter row.
type controlRects struct {
	top   int
	minus image.Rectangle
	plus  image.Rectangle
}

// layoutControls stacks n control rows below the panel title, with the
// buttons right-aligned inside a panel of the given width.
func layoutControls(n, width int) []controlRects {
	if n <= 0 || width <= 0 {
		return nil
	}
	rows := make([]controlRects, n)
	for i := range rows {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		rows[i] = controlRects{top: top, minus: minus, plus: plus}
	}
	return rows
}

// layoutActions arranges n push buttons in rows of actionsPerRow starting at
// top. It returns the rectangles and the y coordinate below the last row.
func layoutActions(n, width, top int) ([]image.Rectangle, int) {
	if n <= 0 || width <= 0 {
		return nil, top
	}
	inner := width - 2*panelPadding
	w := (inner - (actionsPerRow-1)*buttonGap) / actionsPerRow
	if w < 1 {
		w = 1
	}
	rects := make([]image.Rectangle, n)
	for i := range rects {
		row, col := i/actionsPerRow, i%actionsPerRow
		x := panelPadding + col*(w+buttonGap)
		y := top + row*(actionHeight+buttonGap)
		rects[i] = image.Rect(x, y, x+w, y+actionHeight)
	}
	rows := (n + actionsPerRow - 1) / actionsPerRow
	return rects, top + rows*(actionHeight+buttonGap)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}
