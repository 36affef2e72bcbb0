package core

import (
	"fmt"
	"math/bits"
)

// IsSet reports whether bit i of the packed view is set. Bits are stored
// little-endian within each byte: bit i lives in view[i/8] at position i%8.
// An index outside [0, 8*len(view)) is a caller bug and panics.
func IsSet(view []byte, i int) bool {
	checkBit(view, i)
	return view[i>>3]&(1<<(i&7)) != 0
}

// SetBit sets bit i.
func SetBit(view []byte, i int) {
	checkBit(view, i)
	view[i>>3] |= 1 << (i & 7)
}

// ClearBit clears bit i.
func ClearBit(view []byte, i int) {
	checkBit(view, i)
	view[i>>3] &^= 1 << (i & 7)
}

// FlipBit inverts bit i.
func FlipBit(view []byte, i int) {
	checkBit(view, i)
	view[i>>3] ^= 1 << (i & 7)
}

// CountSet returns the number of set bits among the first n bits of view.
func CountSet(view []byte, n int) int {
	if n <= 0 {
		return 0
	}
	full := n >> 3
	if full > len(view) {
		full = len(view)
	}
	total := 0
	for _, b := range view[:full] {
		total += bits.OnesCount8(b)
	}
	if rem := n & 7; rem != 0 && full < len(view) {
		total += bits.OnesCount8(view[full] & (1<<rem - 1))
	}
	return total
}

func checkBit(view []byte, i int) {
	if i < 0 || i>>3 >= len(view) {
		panic(fmt.Sprintf("core: bit index %d out of range for %d-byte view", i, len(view)))
	}
}
