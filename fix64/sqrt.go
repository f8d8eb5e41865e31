package fix64

// Sqrt returns the square root of x, erroring on negative input.
//
// Digit-by-digit binary extraction on the raw magnitude: a probing bit walks
// down from near the top of the word, folding into the result whenever the
// candidate still fits under the remaining radicand. The loop runs twice;
// between passes the remainder is pre-scaled by 2^32 so the second pass
// extracts the low fractional bits without needing a 128-bit word. The final
// dropped bit is rounded half up against the remainder.
func Sqrt(x Fix64) (Fix64, error) {
	if x < 0 {
		return 0, ErrSqrtNegative
	}

	num := uint64(x)
	var res uint64

	bit := uint64(1) << 62
	for bit > num {
		bit >>= 2
	}

	for pass := 0; pass < 2; pass++ {
		for bit != 0 {
			if num >= res+bit {
				num -= res + bit
				res = res>>1 + bit
			} else {
				res >>= 1
			}
			bit >>= 2
		}

		if pass == 0 {
			if num > 1<<32-1 {
				// The remainder would overflow the shift. Fold half a raw
				// unit into the result by hand: num - res - 0.25 keeps
				// num == x - (res + 0.5)^2 consistent.
				num -= res
				num = num<<32 - 0x80000000
				res = res<<32 + 0x80000000
			} else {
				num <<= 32
				res <<= 32
			}
			bit = 1 << 30
		}
	}

	if num > res {
		res++
	}
	return Fix64(res), nil
}
