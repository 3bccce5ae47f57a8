package lattice

import "errors"

var (
	// ErrInvalidCell is returned for parameters that do not describe a physical cell
	ErrInvalidCell = errors.New("invalid unit cell")
	// ErrNoCell is returned when a Session is queried before any cell was set
	ErrNoCell = errors.New("no unit cell has been set")
	// ErrUnknownBasis is returned for a Basis that is not Direct, Reciprocal or Cartesian
	ErrUnknownBasis = errors.New("unknown lattice basis")
	// ErrAxisIndex is returned for a lattice axis index other than 0, 1 or 2
	ErrAxisIndex = errors.New("lattice axis index out of range")
)
