package fix64

import "errors"

// Domain errors. Overflow in the saturating operation set is not an error;
// these cover the paths with no meaningful saturated result.
var (
	ErrDivZero        = errors.New("fix64: division by zero")
	ErrOverflow       = errors.New("fix64: overflow")
	ErrSqrtNegative   = errors.New("fix64: square root of negative value")
	ErrLogNonPositive = errors.New("fix64: logarithm of non-positive value")
	ErrTrigDomain     = errors.New("fix64: inverse trigonometric argument outside [-1, 1]")
	ErrParse          = errors.New("fix64: malformed decimal string")
)
