package fixvec

import "github.com/lixenwraith/fixmath/fix64"

// Vec3 is a 3D vector in Q32.32 fixed point.
type Vec3 struct {
	X, Y, Z fix64.Fix64
}

func V3(x, y, z fix64.Fix64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X.Add(w.X), v.Y.Add(w.Y), v.Z.Add(w.Z)}
}

func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X.Sub(w.X), v.Y.Sub(w.Y), v.Z.Sub(w.Z)}
}

func (v Vec3) Scale(s fix64.Fix64) Vec3 {
	return Vec3{v.X.Mul(s), v.Y.Mul(s), v.Z.Mul(s)}
}

func (v Vec3) Dot(w Vec3) fix64.Fix64 {
	return v.X.Mul(w.X).Add(v.Y.Mul(w.Y)).Add(v.Z.Mul(w.Z))
}

// Cross returns the right-handed cross product.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y.Mul(w.Z).Sub(v.Z.Mul(w.Y)),
		Y: v.Z.Mul(w.X).Sub(v.X.Mul(w.Z)),
		Z: v.X.Mul(w.Y).Sub(v.Y.Mul(w.X)),
	}
}

func (v Vec3) MagSq() fix64.Fix64 {
	return v.X.Mul(v.X).Add(v.Y.Mul(v.Y)).Add(v.Z.Mul(v.Z))
}

func (v Vec3) Mag() fix64.Fix64 {
	m, _ := fix64.Sqrt(v.MagSq())
	return m
}

// Normalize returns the unit vector, zero-safe. All three divisions go
// through the deterministic fixed-point divide; there is no float shortcut,
// so the result is identical on every platform.
func (v Vec3) Normalize() Vec3 {
	mag := v.Mag()
	if mag == 0 {
		return Vec3{}
	}
	x, _ := v.X.Div(mag)
	y, _ := v.Y.Div(mag)
	z, _ := v.Z.Div(mag)
	return Vec3{x, y, z}
}

// ClampMag limits the magnitude to maxMag. The comparison happens on
// squared magnitudes to skip the square root in the common in-range case.
func (v Vec3) ClampMag(maxMag fix64.Fix64) Vec3 {
	magSq := v.MagSq()
	if magSq <= maxMag.Mul(maxMag) {
		return v
	}
	return v.Normalize().Scale(maxMag)
}

// XY projects onto the 2D plane.
func (v Vec3) XY() Vec2 { return Vec2{v.X, v.Y} }

// Lerp interpolates all components from v to w by t.
func (v Vec3) Lerp(w Vec3, t fix64.Fix64) Vec3 {
	return Vec3{
		X: fix64.Lerp(v.X, w.X, t),
		Y: fix64.Lerp(v.Y, w.Y, t),
		Z: fix64.Lerp(v.Z, w.Z, t),
	}
}
