package fixrand

import (
	"encoding/binary"
	"fmt"

	"github.com/lixenwraith/fixmath/fix64"
)

// Uint64N returns an unbiased draw in [0, n). n must be nonzero; exported
// range methods validate before calling.
//
// Draws below 2^64 mod n would make the final reduction uneven, so they are
// rejected and redrawn. The threshold is always under half the word range,
// so each round keeps at least even odds of accepting.
func (g *Generator) Uint64N(n uint64) uint64 {
	if n&(n-1) == 0 {
		return g.Uint64() & (n - 1) // power of two: the reduction is a mask
	}
	thresh := -n % n
	for {
		v := g.Uint64()
		if v >= thresh {
			return v % n
		}
	}
}

// IntN returns a uniform value in [0, max). Errors if max <= 0.
func (g *Generator) IntN(max int64) (int64, error) {
	if max <= 0 {
		return 0, fmt.Errorf("%w: max %d", ErrRange, max)
	}
	return int64(g.Uint64N(uint64(max))), nil
}

// IntRange returns a uniform value in [min, max). Errors if max <= min.
// The span is computed in uint64, so the full int64 range works.
func (g *Generator) IntRange(min, max int64) (int64, error) {
	if max <= min {
		return 0, fmt.Errorf("%w: [%d, %d)", ErrRange, min, max)
	}
	return min + int64(g.Uint64N(uint64(max)-uint64(min))), nil
}

// UnitFix returns a uniform fix64 value in [0, 1), covering every
// representable step of the unit interval rather than a float grid.
func (g *Generator) UnitFix() fix64.Fix64 {
	return fix64.FromRaw(int64(g.Uint64N(1 << 32)))
}

// FixRange returns a uniform fix64 value in [min, max) over the raw span.
// Errors if max <= min.
func (g *Generator) FixRange(min, max fix64.Fix64) (fix64.Fix64, error) {
	if max <= min {
		return 0, fmt.Errorf("%w: [%v, %v)", ErrRange, min, max)
	}
	span := uint64(max.Raw()) - uint64(min.Raw())
	return fix64.FromRaw(min.Raw() + int64(g.Uint64N(span))), nil
}

// Float64 returns a float in [0, 1) built from the top 53 bits of one draw.
// Boundary use only; simulation state should stay in fix64.
func (g *Generator) Float64() float64 {
	return float64(g.Uint64()>>11) * (1.0 / (1 << 53))
}

// Bool consumes one draw and returns its top bit.
func (g *Generator) Bool() bool {
	return g.Uint64()>>63 != 0
}

// Fill writes pseudo-random bytes over p: whole draws as little-endian
// words, then one more draw spent byte-wise on the partial tail.
func (g *Generator) Fill(p []byte) {
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, g.Uint64())
		p = p[8:]
	}
	if len(p) > 0 {
		v := g.Uint64()
		for i := range p {
			p[i] = byte(v >> (8 * i))
		}
	}
}

// Shuffle runs a Fisher-Yates pass over n elements, consuming n-1 bounded
// draws.
func (g *Generator) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := int(g.Uint64N(uint64(i + 1)))
		swap(i, j)
	}
}
