package fix64

import (
	"errors"
	"testing"
)

func TestSqrtExact(t *testing.T) {
	cases := []struct {
		in, want Fix64
	}{
		{Zero, Zero},
		{One, One},
		{FromInt(4), FromInt(2)},
		{FromInt(9), FromInt(3)},
		{FromInt(144), FromInt(12)},
		{One >> 2, Half},
		{Epsilon, FromRaw(1 << 16)}, // sqrt(2^-32) = 2^-16
	}
	for _, c := range cases {
		got, err := Sqrt(c.in)
		if err != nil {
			t.Fatalf("Expected no error for Sqrt(%v), got %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("Expected Sqrt(%v) = %v, got %v", c.in, c.want, got)
		}
	}
}

func TestSqrtTwo(t *testing.T) {
	got, err := Sqrt(FromInt(2))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !near(got, Sqrt2, Epsilon) {
		t.Errorf("Expected Sqrt(2) within one epsilon of %v, got %v", Sqrt2, got)
	}
}

func TestSqrtSquares(t *testing.T) {
	// Squaring the root recovers the input; the error scales with the root
	// itself, so the tolerance is loose in raw units but tight in value.
	tol := FromRaw(512)
	for _, v := range []Fix64{FromFloat(0.04), Half, FromInt(3), FromFloat(7.29), FromInt(1000), FromInt(9999)} {
		r, err := Sqrt(v)
		if err != nil {
			t.Fatalf("Expected no error for Sqrt(%v), got %v", v, err)
		}
		if sq := r.Mul(r); !near(sq, v, tol) {
			t.Errorf("Expected Sqrt(%v)^2 to recover the input, got %v", v, sq)
		}
	}
}

func TestSqrtMax(t *testing.T) {
	got, err := Sqrt(Max)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !near(got, FromFloat(46340.95), FromFloat(0.001)) {
		t.Errorf("Expected Sqrt(Max) near 46340.95, got %v", got)
	}
}

func TestSqrtNegative(t *testing.T) {
	if _, err := Sqrt(-One); !errors.Is(err, ErrSqrtNegative) {
		t.Errorf("Expected ErrSqrtNegative, got %v", err)
	}
	if _, err := Sqrt(Min); !errors.Is(err, ErrSqrtNegative) {
		t.Errorf("Expected ErrSqrtNegative, got %v", err)
	}
}

func BenchmarkSqrt(b *testing.B) {
	x := FromFloat(1234.5678)
	var r Fix64
	for i := 0; i < b.N; i++ {
		r, _ = Sqrt(x)
	}
	_ = r
}
