package fix64

import (
	"math"
	"math/bits"
)

// Saturating operation set. Overflow clamps to Min/Max so simulation code
// keeps running with a defined extreme instead of crashing mid-tick; the
// checked set in checked.go errors instead.

// Add returns x+y, saturating on overflow.
func (x Fix64) Add(y Fix64) Fix64 {
	sum := x + y
	// Overflow iff the operands share a sign and the sum does not.
	if ^(x^y)&(x^sum) < 0 {
		if x > 0 {
			return Max
		}
		return Min
	}
	return sum
}

// Sub returns x-y, saturating on overflow.
func (x Fix64) Sub(y Fix64) Fix64 {
	diff := x - y
	// Overflow iff the operand signs differ and the result sign left x.
	if (x^y)&(x^diff) < 0 {
		if x >= 0 {
			return Max
		}
		return Min
	}
	return diff
}

// Mul returns x*y, saturating on overflow. The dropped low word of the full
// product is rounded half up.
func (x Fix64) Mul(y Fix64) Fix64 {
	p, _ := mulSat(x, y)
	return p
}

// Div returns x/y with the quotient carried to 65 bits and the final bit
// rounded half to even. Overflow saturates; a zero divisor is the one
// arithmetic error, since no saturated result is meaningful.
func (x Fix64) Div(y Fix64) (Fix64, error) {
	if y == 0 {
		return 0, ErrDivZero
	}
	q, _ := divSat(x, y)
	return q, nil
}

// Mod returns the raw remainder of x/y. Min % -Epsilon is zero, which Go
// already defines at the two's-complement boundary.
func (x Fix64) Mod(y Fix64) (Fix64, error) {
	if y == 0 {
		return 0, ErrDivZero
	}
	return x % y, nil
}

// MulDiv computes (a*b)/c through a 128-bit intermediate, avoiding the
// precision loss of chaining Mul and Div. Saturates on overflow.
func MulDiv(a, b, c Fix64) (Fix64, error) {
	if c == 0 {
		return 0, ErrDivZero
	}
	neg := ((a < 0) != (b < 0)) != (c < 0)
	ua := uint64(a)
	if a < 0 {
		ua = -ua
	}
	ub := uint64(b)
	if b < 0 {
		ub = -ub
	}
	uc := uint64(c)
	if c < 0 {
		uc = -uc
	}

	hi, lo := bits.Mul64(ua, ub)
	// If hi >= uc the quotient needs more than 64 bits.
	if hi >= uc {
		if neg {
			return Min, nil
		}
		return Max, nil
	}
	q, _ := bits.Div64(hi, lo, uc)
	if neg {
		if q > 1<<63 {
			return Min, nil
		}
		return -Fix64(q), nil
	}
	if q > math.MaxInt64 {
		return Max, nil
	}
	return Fix64(q), nil
}

// divi divides the raw value by a plain integer, scaling the represented
// value by 1/n. Used by the series code, where n is a small factorial-like
// divisor.
func (x Fix64) divi(n int64) Fix64 { return Fix64(int64(x) / n) }

// --- Internal saturating cores ---

// mulSat multiplies via four 32-bit partial products with the dropped low
// word rounded half up. The bool reports overflow; the returned value is
// already saturated.
func mulSat(x, y Fix64) (Fix64, bool) {
	xlo := uint64(x) & fracMask
	xhi := int64(x) >> FracBits
	ylo := uint64(y) & fracMask
	yhi := int64(y) >> FracBits

	lolo := xlo * ylo
	lohi := int64(xlo) * yhi
	hilo := xhi * int64(ylo)
	hihi := xhi * yhi

	lo := int64((lolo + halfRaw) >> FracBits)
	hi := hihi << FracBits

	sum, carried := addIndicate(lo, lohi, false)
	sum, carried = addIndicate(sum, hilo, carried)
	sum, carried = addIndicate(sum, hi, carried)

	sameSign := x^y >= 0
	if sameSign {
		// Same-sign product turned negative, or a carry crossed the top.
		if sum < 0 || (carried && x > 0) {
			return Max, true
		}
	} else if sum > 0 {
		return Min, true
	}

	// The top word of hihi must be a plain sign extension, or the product
	// left the representable range entirely.
	top := hihi >> FracBits
	if top != 0 && top != -1 {
		if sameSign {
			return Max, true
		}
		return Min, true
	}

	// Opposite signs with both magnitudes above one can still overflow
	// negative without tripping the checks above.
	if !sameSign {
		pos, neg := int64(x), int64(y)
		if pos < neg {
			pos, neg = neg, pos
		}
		if sum > neg && neg < -oneRaw && pos > oneRaw {
			return Min, true
		}
	}
	return Fix64(sum), false
}

// addIndicate adds and flags a carry across the sign bit without deciding
// yet whether it is an overflow; mulSat resolves that against the operand
// signs.
func addIndicate(a, b int64, carried bool) (int64, bool) {
	sum := a + b
	if a^b^sum < 0 {
		carried = true
	}
	return sum, carried
}

// divSat performs restoring long division on the magnitudes, producing 65
// quotient bits and rounding the last one half to even. y must be nonzero.
// The bool reports overflow; the returned value is already saturated.
func divSat(x, y Fix64) (Fix64, bool) {
	neg := x^y < 0
	rem := uint64(x)
	if x < 0 {
		rem = -rem
	}
	div := uint64(y)
	if y < 0 {
		div = -div
	}

	var quo uint64
	bitPos := 64/2 + 1

	// Fast-forward through divisor factors of two.
	for div&0xF == 0 && bitPos >= 4 {
		div >>= 4
		bitPos -= 4
	}

	for rem != 0 && bitPos >= 0 {
		shift := bits.LeadingZeros64(rem)
		if shift > bitPos {
			shift = bitPos
		}
		rem <<= shift
		bitPos -= shift

		d := rem / div
		rem %= div
		quo += d << bitPos

		// Quotient bits above the open positions mean x/y cannot fit.
		if d&^(^uint64(0)>>bitPos) != 0 {
			if neg {
				return Min, true
			}
			return Max, true
		}

		rem <<= 1
		bitPos--
	}

	// quo holds one extra precision bit; fold it back half to even.
	res := quo >> 1
	if quo&1 != 0 && (rem != 0 || res&1 != 0) {
		res++
	}
	if res > 1<<63-1 {
		// Rounding carried past the top bit; -2^63 is still representable.
		if neg && res == 1<<63 {
			return Min, false
		}
		if neg {
			return Min, true
		}
		return Max, true
	}
	if neg {
		return -Fix64(res), false
	}
	return Fix64(res), false
}
