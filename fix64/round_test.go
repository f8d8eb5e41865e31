package fix64

import "testing"

func TestFloorCeilTrunc(t *testing.T) {
	cases := []struct {
		in                Fix64
		floor, ceil, trun Fix64
	}{
		{FromFloat(2.3), FromInt(2), FromInt(3), FromInt(2)},
		{FromFloat(-2.3), FromInt(-3), FromInt(-2), FromInt(-2)},
		{FromInt(5), FromInt(5), FromInt(5), FromInt(5)},
		{FromInt(-5), FromInt(-5), FromInt(-5), FromInt(-5)},
		{Half, Zero, One, Zero},
		{Half.Neg(), -One, Zero, Zero},
	}
	for _, c := range cases {
		if got := c.in.Floor(); got != c.floor {
			t.Errorf("Expected Floor(%v) = %v, got %v", c.in, c.floor, got)
		}
		if got := c.in.Ceil(); got != c.ceil {
			t.Errorf("Expected Ceil(%v) = %v, got %v", c.in, c.ceil, got)
		}
		if got := c.in.Trunc(); got != c.trun {
			t.Errorf("Expected Trunc(%v) = %v, got %v", c.in, c.trun, got)
		}
	}
}

func TestFrac(t *testing.T) {
	if got := FromFloat(2.25).Frac(); got != One>>2 {
		t.Errorf("Expected 0.25, got %v", got)
	}
	if got := FromInt(9).Frac(); got != Zero {
		t.Errorf("Expected Zero, got %v", got)
	}
	// Frac follows Floor, so negative inputs yield a positive fraction.
	if got := FromFloat(-2.25).Frac(); got != One-One>>2 {
		t.Errorf("Expected 0.75, got %v", got)
	}
}

func TestRoundHalfToEven(t *testing.T) {
	cases := []struct {
		in, want Fix64
	}{
		{FromFloat(2.4), FromInt(2)},
		{FromFloat(2.6), FromInt(3)},
		{FromFloat(0.5), FromInt(0)},  // tie to even
		{FromFloat(1.5), FromInt(2)},  // tie to even
		{FromFloat(2.5), FromInt(2)},  // tie to even
		{FromFloat(3.5), FromInt(4)},  // tie to even
		{FromFloat(-0.5), FromInt(0)},
		{FromFloat(-1.5), FromInt(-2)},
		{FromFloat(-2.5), FromInt(-2)},
	}
	for _, c := range cases {
		if got := c.in.Round(); got != c.want {
			t.Errorf("Expected Round(%v) = %v, got %v", c.in, c.want, got)
		}
	}
}

func TestRoundAwayFromZero(t *testing.T) {
	cases := []struct {
		in, want Fix64
	}{
		{FromFloat(2.4), FromInt(2)},
		{FromFloat(2.6), FromInt(3)},
		{FromFloat(0.5), FromInt(1)},
		{FromFloat(1.5), FromInt(2)},
		{FromFloat(2.5), FromInt(3)},
		{FromFloat(-0.5), FromInt(-1)},
		{FromFloat(-1.5), FromInt(-2)},
		{FromFloat(-2.5), FromInt(-3)},
	}
	for _, c := range cases {
		if got := c.in.RoundAwayFromZero(); got != c.want {
			t.Errorf("Expected RoundAwayFromZero(%v) = %v, got %v", c.in, c.want, got)
		}
	}
}

func TestRoundBoundary(t *testing.T) {
	// Near the top of the range rounding up is impossible; it clamps.
	if got := Max.Round(); got != Max.Floor() && got != Max {
		t.Errorf("Expected Round(Max) to stay in range, got %v", got)
	}
	if got := Max.Ceil(); got != Max {
		t.Errorf("Expected Ceil(Max) to saturate, got %v", got)
	}
	if got := Min.Floor(); got != Min {
		t.Errorf("Expected Floor(Min) = Min, got %v", got)
	}
}
