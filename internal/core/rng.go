package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FillBits sets each of the first n bits of view with probability one half
// and clears the rest of the final byte.
func (r *RNG) FillBits(view []byte, n int) {
	for i := range view {
		view[i] = uint8(r.r.Uint32())
	}
	if rem := n & 7; rem != 0 && n>>3 < len(view) {
		view[n>>3] &= 1<<rem - 1
	}
}
