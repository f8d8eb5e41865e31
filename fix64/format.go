package fix64

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// String returns the canonical decimal form: optional sign, integer part,
// and the exact fractional expansion with trailing zeros trimmed. 2^-32 has
// a terminating decimal expansion, so at most 32 fractional digits appear
// and the result parses back to the identical raw value.
func (x Fix64) String() string {
	mag := uint64(x)
	if x < 0 {
		mag = -mag
	}
	ip := mag >> FracBits
	fp := mag & fracMask

	buf := make([]byte, 0, 44)
	if x < 0 {
		buf = append(buf, '-')
	}
	buf = strconv.AppendUint(buf, ip, 10)
	if fp != 0 {
		buf = append(buf, '.')
		for fp != 0 {
			fp *= 10
			buf = append(buf, byte('0'+fp>>FracBits))
			fp &= fracMask
		}
	}
	return string(buf)
}

// Parse converts a decimal string to the nearest representable value,
// saturating out-of-range magnitudes. The fractional digits are folded right
// to left, which makes parsing exact for any string String produced.
func Parse(s string) (Fix64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrParse)
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
		if fracPart == "" {
			return 0, fmt.Errorf("%w: trailing decimal point", ErrParse)
		}
	}
	if intPart == "" && fracPart == "" {
		return 0, fmt.Errorf("%w: no digits", ErrParse)
	}
	if intPart == "" {
		intPart = "0"
	}

	ip, err := strconv.ParseUint(intPart, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return saturated(neg), nil
		}
		return 0, fmt.Errorf("%w: integer part %q", ErrParse, intPart)
	}
	if ip > 1<<31 || (ip == 1<<31 && !neg) {
		return saturated(neg), nil
	}

	// Fold digits right to left: each step is (digit + carry)/10 on the raw
	// fraction, rounded half up. For canonical strings every step divides
	// exactly, so the original raw value is recovered bit for bit.
	var fr uint64
	for i := len(fracPart) - 1; i >= 0; i-- {
		d := fracPart[i]
		if d < '0' || d > '9' {
			return 0, fmt.Errorf("%w: fractional part %q", ErrParse, fracPart)
		}
		fr = (uint64(d-'0')<<FracBits + fr + 5) / 10
	}

	raw := ip<<FracBits + fr
	if neg {
		if raw > 1<<63 {
			return Min, nil
		}
		return Fix64(-raw), nil
	}
	if raw > 1<<63-1 {
		return Max, nil
	}
	return Fix64(raw), nil
}

// MustParse is Parse for known-good literals; it panics on malformed input.
func MustParse(s string) Fix64 {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func saturated(neg bool) Fix64 {
	if neg {
		return Min
	}
	return Max
}
