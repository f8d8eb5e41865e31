package fix64

const maxSinTerms = 16

// reduceAngle maps x into [-Pi, Pi] via the raw TwoPi remainder.
func reduceAngle(x Fix64) Fix64 {
	r := x % TwoPi
	if r > Pi {
		r -= TwoPi
	} else if r < -Pi {
		r += TwoPi
	}
	return r
}

// Sin returns the sine of x in radians.
//
// The angle reduces into [-Pi, Pi], folds into [0, Pi/2] by sign and
// reflection symmetry, then the Taylor series is summed until a term drops
// below one raw unit. Cost is bounded by the fold: at Pi/2 the series is
// done inside ten terms.
func Sin(x Fix64) Fix64 {
	r, negate := foldQuarter(x)
	s := sinSeries(r)
	if negate {
		return -s
	}
	return s
}

// Cos returns the cosine of x in radians, as the Sin phase shift so the two
// can never drift apart. Reduction happens before the shift to keep the raw
// addition in range.
func Cos(x Fix64) Fix64 {
	return Sin(reduceAngle(x) + PiHalf)
}

// Tan returns sin/cos, with ErrDivZero at an exact pole.
func Tan(x Fix64) (Fix64, error) {
	r := reduceAngle(x)
	return Sin(r).Div(Cos(r))
}

// foldQuarter reduces x into [0, Pi/2], reporting whether the sine of the
// folded angle must be negated.
func foldQuarter(x Fix64) (Fix64, bool) {
	r := reduceAngle(x)
	neg := false
	if r < 0 {
		r = -r
		neg = true
	}
	if r > PiHalf {
		r = Pi - r
	}
	return r, neg
}

// sinSeries sums x - x^3/3! + x^5/5! - ... for x in [0, Pi/2].
func sinSeries(x Fix64) Fix64 {
	x2 := x.Mul(x)
	term := x
	sum := x
	for n := int64(1); n <= maxSinTerms; n++ {
		term = -term.Mul(x2).divi(2 * n * (2*n + 1))
		sum += term
		if term == 0 {
			break
		}
	}
	return sum
}
