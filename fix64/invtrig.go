package fix64

// Thresholds for the inverse-trig branch selection.
const (
	sqrtHalf Fix64 = 0xB504F333 // sqrt(2)/2: above it asin flips to the acos identity
	atanFold Fix64 = 0x6A09E667 // tan(Pi/8): above it atan folds toward Pi/4
)

const (
	maxAtanTerms = 24
	maxAsinTerms = 48
)

// Asin returns the arcsine of x, erroring outside [-1, 1].
//
// Small magnitudes sum the series directly, with each term built from the
// rational ratio (2n-1)^2 / (2n(2n+1)). Magnitudes beyond sqrt(2)/2 switch
// to asin(x) = Pi/2 - acos(x), which keeps the worked argument small where
// the derivative of asin blows up.
func Asin(x Fix64) (Fix64, error) {
	if x < -One || x > One {
		return 0, ErrTrigDomain
	}
	neg := x < 0
	a := x
	if neg {
		a = -a
	}

	var r Fix64
	if a > sqrtHalf {
		ac, err := Acos(a)
		if err != nil {
			return 0, err // unreachable, a is in domain
		}
		r = PiHalf - ac
	} else {
		r = asinSeries(a)
	}
	if neg {
		return -r, nil
	}
	return r, nil
}

// Acos returns the arccosine of x in [0, Pi], erroring outside [-1, 1].
// acos(x) = atan2(sqrt((1+x)(1-x)), x) stays stable across the whole domain,
// because the sqrt argument vanishes exactly where x approaches the ends.
func Acos(x Fix64) (Fix64, error) {
	if x < -One || x > One {
		return 0, ErrTrigDomain
	}
	s, err := Sqrt(One.Add(x).Mul(One.Sub(x)))
	if err != nil {
		return 0, err // unreachable, the product is non-negative on the domain
	}
	return Atan2(s, x), nil
}

// Atan returns the arctangent of z, total over the whole range.
//
// Arguments above tan(Pi/8) fold through atan(z) = Pi/4 - atan((1-z)/(1+z)).
// A folded argument can itself land beyond the threshold on the negative
// side, in which case the mirror plus one more fold bounds it; the recursion
// never goes deeper than that.
func Atan(z Fix64) Fix64 {
	if z == 0 {
		return 0
	}
	if z < 0 {
		if z == Min {
			z = Max
		} else {
			z = -z
		}
		return -atanPos(z)
	}
	return atanPos(z)
}

// Atan2 returns the angle of the point (x, y) in (-Pi, Pi]. The sign/zero
// pattern of the arguments picks the quadrant offset added to the base
// arctangent: 0 on the right half, +-Pi on the left, +-Pi/2 on the axis.
func Atan2(y, x Fix64) Fix64 {
	if x == 0 {
		if y > 0 {
			return PiHalf
		}
		if y < 0 {
			return -PiHalf
		}
		return 0
	}
	z, _ := y.Div(x) // x != 0; extreme ratios saturate and fold to ~Pi/2
	a := Atan(z)
	if x > 0 {
		return a
	}
	if y >= 0 {
		return a + Pi
	}
	return a - Pi
}

func atanPos(z Fix64) Fix64 {
	if z <= atanFold {
		return atanSeries(z)
	}
	w, _ := One.Sub(z).Div(One.Add(z)) // 1+z > 0 for positive z
	return PiQuarter - Atan(w)
}

// atanSeries sums z - z^3/3 + z^5/5 - ... for |z| <= tan(Pi/8). The running
// power keeps full precision; division by the odd index happens only at the
// point of summing.
func atanSeries(z Fix64) Fix64 {
	z2 := z.Mul(z)
	term := z
	sum := z
	for n := int64(1); n <= maxAtanTerms; n++ {
		term = -term.Mul(z2)
		sum += term.divi(2*n + 1)
		if term == 0 {
			break
		}
	}
	return sum
}

// asinSeries sums x + x^3/6 + 3x^5/40 + ... for 0 <= x <= sqrt(2)/2.
func asinSeries(x Fix64) Fix64 {
	x2 := x.Mul(x)
	term := x
	sum := x
	for n := int64(1); n <= maxAsinTerms; n++ {
		odd := 2*n - 1
		term = term.Mul(x2)
		term = Fix64(int64(term) * odd * odd / (2 * n * (2*n + 1)))
		sum += term
		if term == 0 {
			break
		}
	}
	return sum
}
