package core

// Index returns the row-major linear index for the address (row, col).
func (s Size) Index(row, col int) int { return row*s.W + col }

// Cells reports the number of addressable cells.
func (s Size) Cells() int { return s.W * s.H }

// Contains reports whether (row, col) is a valid address.
func (s Size) Contains(row, col int) bool {
	return row >= 0 && row < s.H && col >= 0 && col < s.W
}

// Wrap applies toroidal wrapping to the provided address.
func (s Size) Wrap(row, col int) (int, int) {
	row = (row%s.H + s.H) % s.H
	col = (col%s.W + s.W) % s.W
	return row, col
}

// PackedLen returns the byte length of a bitfield holding w*h cells.
func PackedLen(w, h int) int {
	if w <= 0 || h <= 0 {
		return 0
	}
	return (w*h + 7) / 8
}
