package fix64

import (
	"errors"
	"testing"
)

func TestAsin(t *testing.T) {
	got, err := Asin(Zero)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != Zero {
		t.Errorf("Expected 0, got %v", got)
	}

	// The endpoints collapse to exact constants.
	got, err = Asin(One)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != PiHalf {
		t.Errorf("Expected Pi/2, got %v", got)
	}
	got, err = Asin(-One)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != -PiHalf {
		t.Errorf("Expected -Pi/2, got %v", got)
	}

	got, err = Asin(Half)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !near(got, FromFloat(0.5235987755982988), FromRaw(256)) {
		t.Errorf("Expected Asin(0.5) near Pi/6, got %v", got)
	}
}

func TestAsinDomain(t *testing.T) {
	for _, x := range []Fix64{One + Epsilon, -One - Epsilon, FromInt(2), Min, Max} {
		if _, err := Asin(x); !errors.Is(err, ErrTrigDomain) {
			t.Errorf("Expected ErrTrigDomain for Asin(%v), got %v", x, err)
		}
	}
}

func TestAsinRecoversSin(t *testing.T) {
	tol := FromRaw(512)
	for _, theta := range []Fix64{FromFloat(-1.4), FromFloat(-0.7), FromFloat(-0.3), Zero, FromFloat(0.3), FromFloat(0.7), One, FromFloat(1.4)} {
		got, err := Asin(Sin(theta))
		if err != nil {
			t.Fatalf("Expected no error for theta = %v, got %v", theta, err)
		}
		if !near(got, theta, tol) {
			t.Errorf("Expected Asin(Sin(%v)) to recover the angle, got %v", theta, got)
		}
	}
}

func TestAcos(t *testing.T) {
	got, err := Acos(One)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != Zero {
		t.Errorf("Expected 0, got %v", got)
	}

	got, err = Acos(-One)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != Pi {
		t.Errorf("Expected Pi, got %v", got)
	}

	got, err = Acos(Zero)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != PiHalf {
		t.Errorf("Expected Pi/2, got %v", got)
	}

	got, err = Acos(Half)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !near(got, FromFloat(1.0471975511965979), FromRaw(512)) {
		t.Errorf("Expected Acos(0.5) near Pi/3, got %v", got)
	}

	if _, err := Acos(FromInt(2)); !errors.Is(err, ErrTrigDomain) {
		t.Errorf("Expected ErrTrigDomain, got %v", err)
	}
}

func TestAtan(t *testing.T) {
	if got := Atan(Zero); got != Zero {
		t.Errorf("Expected 0, got %v", got)
	}
	// z = 1 folds to the Pi/4 constant with no residual series.
	if got := Atan(One); got != PiQuarter {
		t.Errorf("Expected Pi/4, got %v", got)
	}
	if got := Atan(-One); got != -PiQuarter {
		t.Errorf("Expected -Pi/4, got %v", got)
	}
	if got := Atan(FromFloat(0.4)); !near(got, FromFloat(0.3805063771123649), FromRaw(256)) {
		t.Errorf("Expected Atan(0.4) near 0.3805, got %v", got)
	}
	if got := Atan(FromInt(1000)); !near(got, FromFloat(1.5697963271282298), FromRaw(256)) {
		t.Errorf("Expected Atan(1000) near Pi/2, got %v", got)
	}
	// The whole range is total, including the unnegatable minimum.
	if got := Atan(Min); !near(got, -PiHalf, FromRaw(256)) {
		t.Errorf("Expected Atan(Min) near -Pi/2, got %v", got)
	}
	for _, z := range []Fix64{One, FromFloat(0.2), FromFloat(5.5), Max} {
		if Atan(-z) != -Atan(z) {
			t.Errorf("Expected odd symmetry at %v", z)
		}
	}
}

func TestAtan2(t *testing.T) {
	cases := []struct {
		y, x, want Fix64
	}{
		{Zero, Zero, Zero},
		{One, Zero, PiHalf},
		{-One, Zero, -PiHalf},
		{Zero, One, Zero},
		{Zero, -One, Pi},
		{One, One, PiQuarter},
		{One, -One, Pi - PiQuarter},
		{-One, -One, PiQuarter - Pi},
		{-One, One, -PiQuarter},
	}
	for _, c := range cases {
		if got := Atan2(c.y, c.x); got != c.want {
			t.Errorf("Expected Atan2(%v, %v) = %v, got %v", c.y, c.x, c.want, got)
		}
	}
}

func TestAtan2Range(t *testing.T) {
	// Every result stays inside (-Pi, Pi].
	vals := []Fix64{Zero, One, -One, FromFloat(0.5), FromFloat(-2.5), FromInt(1000), FromInt(-1000)}
	for _, y := range vals {
		for _, x := range vals {
			got := Atan2(y, x)
			if got > Pi || got <= -Pi {
				t.Errorf("Expected Atan2(%v, %v) in (-Pi, Pi], got %v", y, x, got)
			}
		}
	}
}

func BenchmarkAtan2(b *testing.B) {
	y := FromFloat(3.2)
	x := FromFloat(-1.7)
	var r Fix64
	for i := 0; i < b.N; i++ {
		r = Atan2(y, x)
	}
	_ = r
}
