package core

import (
	"testing"
	"time"
)

func TestIndexRowMajorAndInjective(t *testing.T) {
	sizes := []Size{{W: 1, H: 1}, {W: 3, H: 3}, {W: 7, H: 2}, {W: 64, H: 64}}
	for _, s := range sizes {
		seen := make(map[int]bool, s.Cells())
		for row := 0; row < s.H; row++ {
			for col := 0; col < s.W; col++ {
				idx := s.Index(row, col)
				if idx != row*s.W+col {
					t.Fatalf("%v: Index(%d,%d) = %d", s, row, col, idx)
				}
				if seen[idx] {
					t.Fatalf("%v: Index(%d,%d) = %d collides", s, row, col, idx)
				}
				seen[idx] = true
			}
		}
		if len(seen) != s.Cells() {
			t.Fatalf("%v: %d distinct indices, expected %d", s, len(seen), s.Cells())
		}
	}
}

func TestWrapToroidal(t *testing.T) {
	s := Size{W: 5, H: 4}
	cases := []struct{ row, col, wantRow, wantCol int }{
		{0, 0, 0, 0},
		{-1, -1, 3, 4},
		{4, 5, 0, 0},
		{9, -6, 1, 4},
	}
	for _, c := range cases {
		r, col := s.Wrap(c.row, c.col)
		if r != c.wantRow || col != c.wantCol {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), expected (%d,%d)", c.row, c.col, r, col, c.wantRow, c.wantCol)
		}
	}
}

func TestPackedLen(t *testing.T) {
	cases := []struct{ w, h, want int }{
		{64, 64, 512},
		{3, 3, 2},
		{1, 8, 1},
		{1, 9, 2},
		{0, 5, 0},
	}
	for _, c := range cases {
		if got := PackedLen(c.w, c.h); got != c.want {
			t.Fatalf("PackedLen(%d,%d) = %d, expected %d", c.w, c.h, got, c.want)
		}
	}
}

func TestFrameMeterFPS(t *testing.T) {
	m := NewFrameMeter(4)
	base := time.Unix(0, 0)
	tick := 0
	m.now = func() time.Time {
		at := base.Add(time.Duration(tick) * 20 * time.Millisecond)
		tick++
		return at
	}
	if m.FPS() != 0 {
		t.Fatal("FPS before any frame should be zero")
	}
	for i := 0; i < 10; i++ {
		m.Mark()
	}
	if got := m.FPS(); got < 49.9 || got > 50.1 {
		t.Fatalf("FPS = %f, expected 50", got)
	}
}
