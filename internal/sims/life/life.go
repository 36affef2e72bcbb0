package life

import (
	"lifeview/internal/core"
)

// Life implements a binary outer-totalistic automaton on a torus. State is
// stored as a packed bitfield, one bit per cell in row-major order.
type Life struct {
	size core.Size
	rule Rule
	cur  []byte
	nxt  []byte
}

// New returns a Conway Life engine with the provided dimensions.
func New(w, h int) *Life {
	return NewWithConfig(Config{Width: w, Height: h, Rule: Conway})
}

// NewWithConfig returns an engine configured from the provided options.
func NewWithConfig(cfg Config) *Life {
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	n := core.PackedLen(cfg.Width, cfg.Height)
	return &Life{
		size: core.Size{W: cfg.Width, H: cfg.Height},
		rule: cfg.Rule,
		cur:  make([]byte, n),
		nxt:  make([]byte, n),
	}
}

// Name returns the engine identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.size }

// Rule returns the active birth/survival rule.
func (l *Life) Rule() Rule { return l.rule }

// Cells exposes the current packed state. The slice is swapped on every Step.
func (l *Life) Cells() []byte { return l.cur }

// Alive reports whether the cell at (row, col) is alive. Addresses off the
// grid are dead.
func (l *Life) Alive(row, col int) bool {
	if !l.size.Contains(row, col) {
		return false
	}
	return core.IsSet(l.cur, l.size.Index(row, col))
}

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	core.NewRNG(seed).FillBits(l.cur, l.size.Cells())
}

// Clear kills every cell.
func (l *Life) Clear() {
	for i := range l.cur {
		l.cur[i] = 0
	}
}

// Toggle flips the cell at (row, col), wrapping out-of-range addresses.
func (l *Life) Toggle(row, col int) {
	row, col = l.size.Wrap(row, col)
	core.FlipBit(l.cur, l.size.Index(row, col))
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	w, h := l.size.W, l.size.H
	for i := range l.nxt {
		l.nxt[i] = 0
	}
	for y := 0; y < h; y++ {
		up := (y - 1 + h) % h
		down := (y + 1) % h
		for x := 0; x < w; x++ {
			left := (x - 1 + w) % w
			right := (x + 1) % w
			neighbors := l.bit(up, left) + l.bit(up, x) + l.bit(up, right) +
				l.bit(y, left) + l.bit(y, right) +
				l.bit(down, left) + l.bit(down, x) + l.bit(down, right)
			mask := l.rule.Birth
			if l.bit(y, x) == 1 {
				mask = l.rule.Survive
			}
			if mask&(1<<neighbors) != 0 {
				core.SetBit(l.nxt, y*w+x)
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}

func (l *Life) bit(row, col int) int {
	if core.IsSet(l.cur, row*l.size.W+col) {
		return 1
	}
	return 0
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Engine {
		return NewWithConfig(FromMap(cfg))
	})
	core.Register("highlife", func(cfg map[string]string) core.Engine {
		c := FromMap(cfg)
		if _, ok := cfg["rule"]; !ok {
			c.Rule = HighLife
		}
		return &named{Life: NewWithConfig(c), name: "highlife"}
	})
}

// HighLife is the B36/S23 rule.
var HighLife = Rule{Birth: 1<<3 | 1<<6, Survive: 1<<2 | 1<<3}

type named struct {
	*Life
	name string
}

func (n *named) Name() string { return n.name }
