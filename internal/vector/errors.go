package vector

import "errors"

var (
	// ErrDimensionMismatch indicates operands of different lengths.
	ErrDimensionMismatch = errors.New("vector: operands differ in length")
	// ErrZeroVector indicates a projection onto the zero vector.
	ErrZeroVector = errors.New("vector: projection onto zero vector")
)
