package fix64

// Saturation bounds for Pow2: 2^31 tops out the type, 2^-32 is the last
// nonzero step.
const (
	log2Max Fix64 = 31 << FracBits
	log2Min Fix64 = -32 << FracBits
)

const maxPow2Terms = 40

// Log2 returns the base-2 logarithm of x, erroring unless x > 0.
//
// The raw value is shift-normalized into [1,2) while the integer exponent
// accumulates, then Turner's algorithm extracts one fractional bit per
// squaring: square the mantissa, and whenever it reaches [2,4) halve it and
// set the bit.
func Log2(x Fix64) (Fix64, error) {
	if x <= 0 {
		return 0, ErrLogNonPositive
	}

	var y Fix64
	for x < One {
		x <<= 1
		y -= One
	}
	for x >= One<<1 {
		x >>= 1
		y += One
	}

	b := Half
	for i := 0; i < FracBits; i++ {
		x = x.Mul(x)
		if x >= One<<1 {
			x >>= 1
			y += b
		}
		b >>= 1
	}
	return y, nil
}

// Pow2 returns 2 raised to x, saturating to Max at or above exponent 31 and
// flushing to Zero at or below -32.
//
// The exponent splits into integer and fractional parts; 2^frac comes from
// the exp series with ln(2) folded into every term, summed until a term
// drops below one raw unit, and the integer part is applied as a shift.
// Negative exponents go through the reciprocal.
func Pow2(x Fix64) Fix64 {
	if x == 0 {
		return One
	}
	if x <= log2Min {
		return Zero
	}
	neg := x < 0
	if neg {
		x = -x
	}
	if x == One {
		if neg {
			return Half
		}
		return One << 1
	}
	if x >= log2Max {
		if neg {
			r, _ := One.Div(Max)
			return r
		}
		return Max
	}

	ip := int(x >> FracBits)
	x &= fracMask

	sum := One
	term := One
	for i := int64(1); term != 0 && i <= maxPow2Terms; i++ {
		term = term.Mul(x).Mul(Ln2).divi(i)
		sum += term
	}
	sum <<= ip

	if neg {
		r, _ := One.Div(sum) // sum >= One, cannot fail
		return r
	}
	return sum
}

// Pow returns b raised to e as Pow2(e * Log2(b)). A zero base with negative
// exponent is a division by zero; a negative base has no real logarithm.
func Pow(b, e Fix64) (Fix64, error) {
	if b == One || e == 0 {
		return One, nil
	}
	if b == 0 {
		if e < 0 {
			return 0, ErrDivZero
		}
		return Zero, nil
	}
	lg, err := Log2(b)
	if err != nil {
		return 0, err
	}
	return Pow2(e.Mul(lg)), nil
}

// Ln returns the natural logarithm, erroring unless x > 0.
func Ln(x Fix64) (Fix64, error) {
	lg, err := Log2(x)
	if err != nil {
		return 0, err
	}
	return lg.Mul(Ln2), nil
}

// Exp returns e raised to x.
func Exp(x Fix64) Fix64 { return Pow2(x.Mul(Log2E)) }
