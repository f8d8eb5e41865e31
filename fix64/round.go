package fix64

// Floor rounds toward negative infinity by masking the fractional bits.
func (x Fix64) Floor() Fix64 { return x &^ fracMask }

// Ceil rounds toward positive infinity.
func (x Fix64) Ceil() Fix64 {
	if x&fracMask != 0 {
		return x.Floor().Add(One)
	}
	return x
}

// Trunc rounds toward zero.
func (x Fix64) Trunc() Fix64 {
	if x < 0 {
		return x.Ceil()
	}
	return x.Floor()
}

// Frac returns the fractional offset above Floor, always in [0, One).
func (x Fix64) Frac() Fix64 { return x & fracMask }

// Round rounds to the nearest integer, ties to even. The decision reads
// exactly the bit at the half-unit position.
func (x Fix64) Round() Fix64 {
	frac := x & fracMask
	floor := x.Floor()
	if frac < Half {
		return floor
	}
	if frac > Half {
		return floor.Add(One)
	}
	// Tie: pick the even neighbor.
	if floor&One == 0 {
		return floor
	}
	return floor.Add(One)
}

// RoundAwayFromZero rounds to the nearest integer, ties away from zero.
func (x Fix64) RoundAwayFromZero() Fix64 {
	frac := x & fracMask
	floor := x.Floor()
	if frac < Half {
		return floor
	}
	if frac > Half {
		return floor.Add(One)
	}
	if x < 0 {
		return floor
	}
	return floor.Add(One)
}
