// Package fixvec provides 2D and 3D vectors over fix64 scalars. It consumes
// only the scalar contract (arithmetic, comparison, Sqrt/Sin/Cos/Atan2), so
// vector math inherits the kernel's bit-exactness across platforms.
package fixvec

import "github.com/lixenwraith/fixmath/fix64"

// Vec2 is a 2D vector in Q32.32 fixed point.
type Vec2 struct {
	X, Y fix64.Fix64
}

func V2(x, y fix64.Fix64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X.Add(w.X), v.Y.Add(w.Y)} }
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X.Sub(w.X), v.Y.Sub(w.Y)} }

// Scale multiplies both components by s.
func (v Vec2) Scale(s fix64.Fix64) Vec2 {
	return Vec2{v.X.Mul(s), v.Y.Mul(s)}
}

// Dot returns v . w.
func (v Vec2) Dot(w Vec2) fix64.Fix64 {
	return v.X.Mul(w.X).Add(v.Y.Mul(w.Y))
}

// MagSq returns the squared magnitude without the square root.
func (v Vec2) MagSq() fix64.Fix64 {
	return v.X.Mul(v.X).Add(v.Y.Mul(v.Y))
}

// Mag returns the Euclidean length.
func (v Vec2) Mag() fix64.Fix64 {
	m, _ := fix64.Sqrt(v.MagSq()) // MagSq is non-negative
	return m
}

// Normalize returns the unit vector, zero-safe: the zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	mag := v.Mag()
	if mag == 0 {
		return Vec2{}
	}
	x, _ := v.X.Div(mag)
	y, _ := v.Y.Div(mag)
	return Vec2{x, y}
}

// ClampMag limits the magnitude to maxMag while preserving direction.
func (v Vec2) ClampMag(maxMag fix64.Fix64) Vec2 {
	mag := v.Mag()
	if mag <= maxMag || mag == 0 {
		return v
	}
	scale, _ := maxMag.Div(mag)
	return v.Scale(scale)
}

// Rotate rotates v by angle radians counter-clockwise.
func (v Vec2) Rotate(angle fix64.Fix64) Vec2 {
	sin := fix64.Sin(angle)
	cos := fix64.Cos(angle)
	return Vec2{
		X: v.X.Mul(cos).Sub(v.Y.Mul(sin)),
		Y: v.X.Mul(sin).Add(v.Y.Mul(cos)),
	}
}

// Reflect bounces v off a surface with the given normal:
// v' = v - 2 (v . n) n.
func (v Vec2) Reflect(normal Vec2) Vec2 {
	dot := v.Dot(normal)
	dot2 := dot.Add(dot)
	return Vec2{
		X: v.X.Sub(dot2.Mul(normal.X)),
		Y: v.Y.Sub(dot2.Mul(normal.Y)),
	}
}

// Perp returns v rotated 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 { return Vec2{v.Y.Neg(), v.X} }

// Angle returns the heading of v in (-Pi, Pi].
func (v Vec2) Angle() fix64.Fix64 { return fix64.Atan2(v.Y, v.X) }

// Lerp interpolates both components from v to w by t.
func (v Vec2) Lerp(w Vec2, t fix64.Fix64) Vec2 {
	return Vec2{
		X: fix64.Lerp(v.X, w.X, t),
		Y: fix64.Lerp(v.Y, w.Y, t),
	}
}
