// Package fixrand implements the deterministic pseudo-random generator for
// lockstep simulation: a two-word xoroshiro-style state advanced by a fixed
// rotate/xor/shift recurrence, seeded through splitmix-style expansion, with
// unbiased bounded sampling over native integers and fix64 scalars.
//
// Generators are not synchronized. Give each logical stream (each actor,
// each worker) its own instance, normally through Derive, instead of sharing
// one across goroutines.
package fixrand

import (
	"errors"
	"math/bits"
)

var (
	ErrRange = errors.New("fixrand: invalid range")
	ErrState = errors.New("fixrand: invalid generator state")
)

// Stream-splitting increment, 2^64 divided by the golden ratio.
const goldenGamma = 0x9e3779b97f4a7c15

// Generator holds the entire mutable state: two 64-bit words, never both
// zero.
type Generator struct {
	s0, s1 uint64
}

// New returns a generator for the given seed. The seed expands through two
// splitmix steps so that nearby seeds still produce unrelated streams.
func New(seed uint64) *Generator {
	z0 := seed + goldenGamma
	z1 := z0 + goldenGamma
	g := &Generator{s0: mix64(z0), s1: mix64(z1)}
	if g.s0 == 0 && g.s1 == 0 {
		// The all-zero state is the fixed point of the recurrence.
		g.s1 = goldenGamma
	}
	return g
}

// Uint64 advances the state one step and returns the scrambled output word.
// This is the only method that mutates state; every other draw is built on
// top of it.
func (g *Generator) Uint64() uint64 {
	s0, s1 := g.s0, g.s1
	out := bits.RotateLeft64(s0*5, 7) * 9
	s1 ^= s0
	g.s0 = bits.RotateLeft64(s0, 24) ^ s1 ^ (s1 << 16)
	g.s1 = bits.RotateLeft64(s1, 37)
	return out
}

// mix64 is the splitmix64 finalizer: xor-shift avalanching across two
// multiplicative diffusion steps.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
