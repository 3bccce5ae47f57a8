package utils

import "errors"

var (
	// ErrSingularMatrix is returned when a matrix has a zero determinant
	ErrSingularMatrix = errors.New("singular matrix")
	// ErrDegenerateVector is returned when a vector with ~zero length is used
	// where a direction is required
	ErrDegenerateVector = errors.New("degenerate (zero length) vector")
)
