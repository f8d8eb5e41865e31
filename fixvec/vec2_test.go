package fixvec

import (
	"testing"

	"github.com/lixenwraith/fixmath/fix64"
)

// near reports whether a and b differ by at most tol raw units.
func near(a, b, tol fix64.Fix64) bool {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func TestVec2Arithmetic(t *testing.T) {
	a := V2(fix64.FromInt(3), fix64.FromInt(4))
	b := V2(fix64.FromInt(1), fix64.FromInt(-2))

	if got := a.Add(b); got != V2(fix64.FromInt(4), fix64.FromInt(2)) {
		t.Errorf("Expected (4, 2), got %v", got)
	}
	if got := a.Sub(b); got != V2(fix64.FromInt(2), fix64.FromInt(6)) {
		t.Errorf("Expected (2, 6), got %v", got)
	}
	if got := a.Scale(fix64.Half); got != V2(fix64.FromFloat(1.5), fix64.FromInt(2)) {
		t.Errorf("Expected (1.5, 2), got %v", got)
	}
	if got := a.Dot(b); got != fix64.FromInt(-5) {
		t.Errorf("Expected -5, got %v", got)
	}
}

func TestVec2Mag(t *testing.T) {
	v := V2(fix64.FromInt(3), fix64.FromInt(4))
	if got := v.MagSq(); got != fix64.FromInt(25) {
		t.Errorf("Expected 25, got %v", got)
	}
	if got := v.Mag(); got != fix64.FromInt(5) {
		t.Errorf("Expected 5, got %v", got)
	}
	if got := (Vec2{}).Mag(); got != fix64.Zero {
		t.Errorf("Expected 0, got %v", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := V2(fix64.FromInt(3), fix64.FromInt(4))
	n := v.Normalize()
	if !near(n.X, fix64.FromFloat(0.6), fix64.FromRaw(4)) {
		t.Errorf("Expected X near 0.6, got %v", n.X)
	}
	if !near(n.Y, fix64.FromFloat(0.8), fix64.FromRaw(4)) {
		t.Errorf("Expected Y near 0.8, got %v", n.Y)
	}
	if !near(n.MagSq(), fix64.One, fix64.FromRaw(16)) {
		t.Errorf("Expected unit magnitude, got MagSq %v", n.MagSq())
	}

	// The zero vector must not divide by its own magnitude.
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("Expected the zero vector to stay zero, got %v", got)
	}
}

func TestVec2ClampMag(t *testing.T) {
	v := V2(fix64.FromInt(3), fix64.FromInt(4))
	if got := v.ClampMag(fix64.FromInt(10)); got != v {
		t.Errorf("Expected an in-range vector unchanged, got %v", got)
	}
	c := v.ClampMag(fix64.One)
	if !near(c.Mag(), fix64.One, fix64.FromRaw(64)) {
		t.Errorf("Expected magnitude clamped to 1, got %v", c.Mag())
	}
	if !near(c.X, fix64.FromFloat(0.6), fix64.FromRaw(64)) {
		t.Errorf("Expected the direction preserved, got X = %v", c.X)
	}
}

func TestVec2Rotate(t *testing.T) {
	v := V2(fix64.One, fix64.Zero)

	r := v.Rotate(fix64.PiHalf)
	if r.X != fix64.Zero {
		t.Errorf("Expected X = 0 after a quarter turn, got raw %d", r.X.Raw())
	}
	if !near(r.Y, fix64.One, fix64.FromRaw(64)) {
		t.Errorf("Expected Y near 1 after a quarter turn, got %v", r.Y)
	}

	r = v.Rotate(fix64.Pi)
	if !near(r.X, -fix64.One, fix64.FromRaw(64)) || r.Y != fix64.Zero {
		t.Errorf("Expected (-1, 0) after a half turn, got %v", r)
	}

	// Rotation preserves length.
	w := V2(fix64.FromInt(3), fix64.FromInt(4)).Rotate(fix64.FromFloat(0.7))
	if !near(w.MagSq(), fix64.FromInt(25), fix64.FromRaw(4096)) {
		t.Errorf("Expected the magnitude preserved, got MagSq %v", w.MagSq())
	}
}

func TestVec2Reflect(t *testing.T) {
	// A diagonal fall onto a horizontal floor bounces up.
	v := V2(fix64.One, -fix64.One)
	floor := V2(fix64.Zero, fix64.One)
	if got := v.Reflect(floor); got != V2(fix64.One, fix64.One) {
		t.Errorf("Expected (1, 1), got %v", got)
	}
	// Reflecting twice restores the original.
	if got := v.Reflect(floor).Reflect(floor); got != v {
		t.Errorf("Expected the original vector back, got %v", got)
	}
}

func TestVec2Perp(t *testing.T) {
	v := V2(fix64.FromInt(2), fix64.FromInt(3))
	if got := v.Perp(); got != V2(fix64.FromInt(-3), fix64.FromInt(2)) {
		t.Errorf("Expected (-3, 2), got %v", got)
	}
	w := V2(fix64.FromFloat(2.5), fix64.FromFloat(1.25))
	if got := w.Dot(w.Perp()); got != fix64.Zero {
		t.Errorf("Expected a perpendicular dot of 0, got raw %d", got.Raw())
	}
}

func TestVec2Angle(t *testing.T) {
	if got := V2(fix64.One, fix64.Zero).Angle(); got != fix64.Zero {
		t.Errorf("Expected 0, got %v", got)
	}
	if got := V2(fix64.Zero, fix64.One).Angle(); got != fix64.PiHalf {
		t.Errorf("Expected Pi/2, got %v", got)
	}
	if got := V2(fix64.One, fix64.One).Angle(); got != fix64.PiQuarter {
		t.Errorf("Expected Pi/4, got %v", got)
	}
	if got := V2(-fix64.One, fix64.Zero).Angle(); got != fix64.Pi {
		t.Errorf("Expected Pi, got %v", got)
	}
}

func TestVec2Lerp(t *testing.T) {
	a := V2(fix64.Zero, fix64.Zero)
	b := V2(fix64.FromInt(10), fix64.FromInt(20))
	if got := a.Lerp(b, fix64.Half); got != V2(fix64.FromInt(5), fix64.FromInt(10)) {
		t.Errorf("Expected (5, 10), got %v", got)
	}
	if got := a.Lerp(b, fix64.Zero); got != a {
		t.Errorf("Expected the start point, got %v", got)
	}
	if got := a.Lerp(b, fix64.One); got != b {
		t.Errorf("Expected the end point, got %v", got)
	}
}
