package life

import (
	"testing"

	"lifeview/internal/core"
)

func TestBlinkerOscillation(t *testing.T) {
	life := New(5, 5)
	life.Clear()

	life.Toggle(1, 2)
	life.Toggle(2, 2)
	life.Toggle(3, 2)

	life.Step()
	expectAlive(t, life, "first step", [][2]int{{2, 1}, {2, 2}, {2, 3}})

	life.Step()
	expectAlive(t, life, "second step", [][2]int{{1, 2}, {2, 2}, {3, 2}})
}

func TestToggleOnThreeByThree(t *testing.T) {
	life := New(3, 3)
	life.Clear()
	life.Toggle(1, 1)

	cells := life.Cells()
	for i := 0; i < 9; i++ {
		if got := core.IsSet(cells, i); got != (i == 4) {
			t.Fatalf("bit %d = %v after toggling (1,1)", i, got)
		}
	}

	life.Toggle(1, 1)
	if core.CountSet(life.Cells(), 9) != 0 {
		t.Fatal("second toggle should kill the cell again")
	}
}

func TestStampGliderShapeAndTravel(t *testing.T) {
	life := New(8, 8)
	life.Clear()
	life.StampGlider(2, 2)
	expectAlive(t, life, "stamp", [][2]int{{1, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3}})

	for i := 0; i < 4; i++ {
		life.Step()
	}
	expectAlive(t, life, "after 4 steps", [][2]int{{2, 3}, {3, 4}, {4, 2}, {4, 3}, {4, 4}})
}

func TestStampGliderOnTinyGridStaysInBuffer(t *testing.T) {
	life := New(2, 2)
	life.StampGlider(0, 0)
	if got := len(life.Cells()); got != core.PackedLen(2, 2) {
		t.Fatalf("buffer length %d changed after stamping", got)
	}
	life.Step()
}

func TestStampPulsarPrecursorBecomesPulsar(t *testing.T) {
	life := New(32, 32)
	life.Clear()
	life.StampPulsarPrecursor(16, 16)
	if got := core.CountSet(life.Cells(), 32*32); got != len(prePulsar) {
		t.Fatalf("pre-pulsar has %d live cells, expected %d", got, len(prePulsar))
	}

	// The pulsar has period 3 and 48 live cells in its largest phase.
	var populations []int
	for i := 0; i < 40; i++ {
		life.Step()
		populations = append(populations, core.CountSet(life.Cells(), 32*32))
	}
	tail := populations[len(populations)-6:]
	if tail[0] != tail[3] || tail[1] != tail[4] || tail[2] != tail[5] {
		t.Fatalf("expected period-3 oscillation, populations %v", tail)
	}
	max := 0
	for _, p := range tail {
		if p > max {
			max = p
		}
	}
	if max != 72 && max != 56 && max != 48 {
		t.Fatalf("unexpected pulsar populations %v", tail)
	}
}

func TestResetDeterministic(t *testing.T) {
	a := New(16, 16)
	b := New(16, 16)
	a.Reset(42)
	b.Reset(42)
	for i := range a.Cells() {
		if a.Cells()[i] != b.Cells()[i] {
			t.Fatal("Reset with the same seed must be deterministic")
		}
	}
	if core.CountSet(a.Cells(), 256) == 0 {
		t.Fatal("Reset should populate some cells")
	}
}

func TestParseRule(t *testing.T) {
	r, err := ParseRule("b36/s23")
	if err != nil {
		t.Fatalf("ParseRule: %v", err)
	}
	if r != HighLife {
		t.Fatalf("ParseRule(b36/s23) = %v", r)
	}
	if got := Conway.String(); got != "B3/S23" {
		t.Fatalf("Conway.String() = %q", got)
	}
	for _, bad := range []string{"", "B3", "B9/S23", "X3/S23", "B3/B3"} {
		if _, err := ParseRule(bad); err == nil {
			t.Fatalf("ParseRule(%q) should fail", bad)
		}
	}
}

func TestRegistryFactories(t *testing.T) {
	factory, ok := core.Engines()["highlife"]
	if !ok {
		t.Fatal("highlife engine not registered")
	}
	eng := factory(map[string]string{"w": "10", "h": "6"})
	if eng.Name() != "highlife" {
		t.Fatalf("Name() = %q", eng.Name())
	}
	if s := eng.Size(); s.W != 10 || s.H != 6 {
		t.Fatalf("Size() = %v", s)
	}
}

func expectAlive(t *testing.T, life *Life, stage string, alive [][2]int) {
	t.Helper()
	want := make(map[[2]int]bool, len(alive))
	for _, a := range alive {
		want[a] = true
	}
	size := life.Size()
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			if got := life.Alive(row, col); got != want[[2]int{row, col}] {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", stage, row, col, got, want[[2]int{row, col}])
			}
		}
	}
}
