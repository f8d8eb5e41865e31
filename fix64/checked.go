package fix64

// Checked operation set: the same arithmetic as the saturating set, but an
// overflow comes back as ErrOverflow instead of a clamped value. For callers
// that would rather reject a tick than run it on saturated state.

// AddChecked returns x+y or ErrOverflow.
func (x Fix64) AddChecked(y Fix64) (Fix64, error) {
	sum := x + y
	if ^(x^y)&(x^sum) < 0 {
		return 0, ErrOverflow
	}
	return sum, nil
}

// SubChecked returns x-y or ErrOverflow.
func (x Fix64) SubChecked(y Fix64) (Fix64, error) {
	diff := x - y
	if (x^y)&(x^diff) < 0 {
		return 0, ErrOverflow
	}
	return diff, nil
}

// MulChecked returns x*y or ErrOverflow.
func (x Fix64) MulChecked(y Fix64) (Fix64, error) {
	p, sat := mulSat(x, y)
	if sat {
		return 0, ErrOverflow
	}
	return p, nil
}

// DivChecked returns x/y, ErrDivZero, or ErrOverflow where Div would
// saturate.
func (x Fix64) DivChecked(y Fix64) (Fix64, error) {
	if y == 0 {
		return 0, ErrDivZero
	}
	q, sat := divSat(x, y)
	if sat {
		return 0, ErrOverflow
	}
	return q, nil
}
