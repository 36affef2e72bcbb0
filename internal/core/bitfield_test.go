package core

import "testing"

func TestIsSetLittleEndianWithinByte(t *testing.T) {
	view := []byte{0b0000_0101, 0b1000_0000}
	want := map[int]bool{0: true, 2: true, 15: true}
	for i := 0; i < 16; i++ {
		if got := IsSet(view, i); got != want[i] {
			t.Fatalf("IsSet(%d) = %v, expected %v", i, got, want[i])
		}
	}
}

func TestFlipIsolatesSingleBit(t *testing.T) {
	base := []byte{0x5a, 0xc3, 0x0f}
	n := 8 * len(base)
	for i := 0; i < n; i++ {
		flipped := append([]byte(nil), base...)
		FlipBit(flipped, i)
		for j := 0; j < n; j++ {
			changed := IsSet(base, j) != IsSet(flipped, j)
			if changed != (i == j) {
				t.Fatalf("flipping bit %d changed bit %d: %v", i, j, changed)
			}
		}
	}
}

func TestSetAndClearBit(t *testing.T) {
	view := make([]byte, 2)
	SetBit(view, 9)
	if view[1] != 0b10 {
		t.Fatalf("SetBit(9) wrote %08b", view[1])
	}
	SetBit(view, 9)
	if view[1] != 0b10 {
		t.Fatal("SetBit must be idempotent")
	}
	ClearBit(view, 9)
	if view[1] != 0 {
		t.Fatalf("ClearBit(9) left %08b", view[1])
	}
}

func TestIsSetOutOfRangePanics(t *testing.T) {
	for _, idx := range []int{-1, 16, 100} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("IsSet(%d) on 2-byte view did not panic", idx)
				}
			}()
			IsSet(make([]byte, 2), idx)
		}()
	}
}

func TestCountSetIgnoresPaddingBits(t *testing.T) {
	view := []byte{0xff, 0xff}
	if got := CountSet(view, 9); got != 9 {
		t.Fatalf("CountSet(9) = %d, expected 9", got)
	}
	if got := CountSet(view, 16); got != 16 {
		t.Fatalf("CountSet(16) = %d, expected 16", got)
	}
	if got := CountSet(view, 0); got != 0 {
		t.Fatalf("CountSet(0) = %d, expected 0", got)
	}
}
