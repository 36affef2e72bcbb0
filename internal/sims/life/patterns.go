package life

import "lifeview/internal/core"

// offset is a (row, col) displacement from a stamp anchor.
type offset struct{ dr, dc int }

// Glider heading south-east, centred on the anchor:
//
//	.#.
//	..#
//	###
var glider = []offset{
	{-1, 0},
	{0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Pre-pulsar, centred on the anchor; becomes a pulsar after a few
// generations under B3/S23:
//
//	###...###
//	#.#...#.#
//	###...###
var prePulsar = []offset{
	{-1, -4}, {-1, -3}, {-1, -2}, {-1, 2}, {-1, 3}, {-1, 4},
	{0, -4}, {0, -2}, {0, 2}, {0, 4},
	{1, -4}, {1, -3}, {1, -2}, {1, 2}, {1, 3}, {1, 4},
}

// StampGlider writes a glider around (row, col). Cells outside the pattern are
// untouched; cells off the edge wrap around the torus.
func (l *Life) StampGlider(row, col int) {
	l.stamp(row, col, glider, 1)
}

// StampPulsarPrecursor writes a pre-pulsar around (row, col), clearing the
// rest of its 3x9 bounding box so the pattern evolves cleanly.
func (l *Life) StampPulsarPrecursor(row, col int) {
	l.stamp(row, col, prePulsar, 4)
}

// stamp clears the box of radius (1, clearCols) around the anchor and then
// sets the pattern cells. On grids smaller than the box, wrapped cells may
// be visited more than once; the set pass runs last so the pattern wins.
func (l *Life) stamp(row, col int, pattern []offset, clearCols int) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -clearCols; dc <= clearCols; dc++ {
			r, c := l.size.Wrap(row+dr, col+dc)
			core.ClearBit(l.cur, l.size.Index(r, c))
		}
	}
	for _, o := range pattern {
		r, c := l.size.Wrap(row+o.dr, col+o.dc)
		core.SetBit(l.cur, l.size.Index(r, c))
	}
}
