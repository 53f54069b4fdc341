package polynomial

import "errors"

var (
	// ErrNegativeExponent is returned when raising a polynomial to a negative power.
	ErrNegativeExponent = errors.New("negative exponent")

	// ErrNegativeOrder is returned when requesting a falling factorial of negative order.
	ErrNegativeOrder = errors.New("negative order")

	// ErrInvalidOperand is returned when a value can be coerced neither to a
	// coefficient nor to a sequence of coefficients.
	ErrInvalidOperand = errors.New("invalid operand")
)
