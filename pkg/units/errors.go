package units

import "errors"

// Quantity and unit errors.
var (
	ErrInvalidDimension      = errors.New("invalid dimension")
	ErrUnknownUnit           = errors.New("unknown unit")
	ErrIncompatibleDimension = errors.New("incompatible dimensions")
	ErrLossyConversion       = errors.New("lossy conversion")
	ErrOverflow              = errors.New("value out of range")
)
