package fix64

import "math"

// Fix64 is a Q32.32 fixed-point number: a signed 64-bit raw value with 32
// fractional bits, representing raw / 2^32.
type Fix64 int64

// Q32.32 layout constants.
const (
	FracBits       = 32
	One      Fix64 = 1 << FracBits
	Half     Fix64 = 1 << (FracBits - 1)
	Epsilon  Fix64 = 1 // smallest step, 2^-32
	Zero     Fix64 = 0
	Max      Fix64 = math.MaxInt64 // 2^31 - 2^-32
	Min      Fix64 = math.MinInt64 // -2^31
)

// Untyped raw forms for the integer plumbing.
const (
	oneRaw   = 1 << FracBits
	halfRaw  = 1 << (FracBits - 1)
	fracMask = oneRaw - 1
)

// Transcendental constants, truncated from the exact hex expansions.
const (
	Pi        Fix64 = 0x3243F6A88
	TwoPi     Fix64 = 0x6487ED511
	PiHalf    Fix64 = 0x1921FB544
	PiQuarter Fix64 = 0xC90FDAA2
	Ln2       Fix64 = 0xB17217F7  // natural log of 2
	Log2E     Fix64 = 0x171547652 // 1 / ln(2)
	Sqrt2     Fix64 = 0x16A09E667
)

// --- Conversions ---

// FromInt returns i as a Fix64. Exact within the int32 range, saturating
// beyond it.
func FromInt(i int) Fix64 {
	if i > math.MaxInt32 {
		return Max
	}
	if i < math.MinInt32 {
		return Min
	}
	return Fix64(int64(i) << FracBits)
}

// FromFloat returns the nearest representable value, rounding halves away
// from zero and saturating out-of-range input. NaN maps to Zero: the
// representation has no invalid value to mirror it.
func FromFloat(f float64) Fix64 {
	if f != f {
		return Zero
	}
	scaled := f * (1 << FracBits)
	if scaled >= float64(math.MaxInt64) {
		return Max
	}
	if scaled <= float64(math.MinInt64) {
		return Min
	}
	if scaled >= 0 {
		return Fix64(scaled + 0.5)
	}
	return Fix64(scaled - 0.5)
}

// FromRaw reinterprets a raw Q32.32 value, bypassing the rounding conversion
// path. The raw layout is a portable fixed 64-bit integer, so values carried
// across machines reconstruct identically.
func FromRaw(raw int64) Fix64 { return Fix64(raw) }

// Raw returns the underlying Q32.32 integer.
func (x Fix64) Raw() int64 { return int64(x) }

// Int truncates to the integer part by raw shift (floor for negatives).
func (x Fix64) Int() int { return int(x >> FracBits) }

// Float64 converts for display and I/O boundaries only; simulation state
// must stay in Fix64.
func (x Fix64) Float64() float64 { return float64(x) / (1 << FracBits) }

// --- Helpers ---

// Abs returns the magnitude, saturating Min to Max.
func (x Fix64) Abs() Fix64 {
	if x == Min {
		return Max
	}
	if x < 0 {
		return -x
	}
	return x
}

// Neg returns -x, saturating Min to Max.
func (x Fix64) Neg() Fix64 {
	if x == Min {
		return Max
	}
	return -x
}

// Sign returns -One, Zero, or One.
func (x Fix64) Sign() Fix64 {
	if x < 0 {
		return -One
	}
	if x > 0 {
		return One
	}
	return Zero
}

// IsZero reports whether x is exactly zero.
func (x Fix64) IsZero() bool { return x == 0 }

func MinOf(a, b Fix64) Fix64 {
	if a < b {
		return a
	}
	return b
}

func MaxOf(a, b Fix64) Fix64 {
	if a > b {
		return a
	}
	return b
}

// Clamp limits x to [lo, hi].
func (x Fix64) Clamp(lo, hi Fix64) Fix64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp interpolates from a to b by t, typically t in [0, One].
func Lerp(a, b, t Fix64) Fix64 {
	return a.Add(b.Sub(a).Mul(t))
}
