package fixvec

import (
	"github.com/lixenwraith/fixmath/fix64"
	"github.com/lixenwraith/fixmath/fixrand"
)

// RandomOnUnitCircle returns a uniformly random direction vector of length
// one, drawn from the provided generator so the caller controls the stream.
func RandomOnUnitCircle(g *fixrand.Generator) Vec2 {
	angle, _ := g.FixRange(-fix64.Pi, fix64.Pi) // constant range, cannot fail
	return Vec2{X: fix64.Cos(angle), Y: fix64.Sin(angle)}
}

// RandomInRect returns a uniformly random point with each component drawn
// from [min, max) of the corresponding axis. Degenerate axes (max <= min)
// collapse to the min value, mirroring how zero-area spawn regions behave.
func RandomInRect(g *fixrand.Generator, min, max Vec2) Vec2 {
	p := min
	if max.X > min.X {
		p.X, _ = g.FixRange(min.X, max.X)
	}
	if max.Y > min.Y {
		p.Y, _ = g.FixRange(min.Y, max.Y)
	}
	return p
}
