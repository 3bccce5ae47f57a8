package view

import (
	"errors"

	"github.com/notargets/gocryst/utils"
)

var (
	// ErrDegenerateVector is returned for a zero length projection or up vector
	ErrDegenerateVector = utils.ErrDegenerateVector
	// ErrParallelAxes is returned when no up vector candidate is independent
	// of the projection direction
	ErrParallelAxes = errors.New("no up vector independent of the projection direction")
	// ErrNoIntegerRepresentation means no small integer multiple of a vector
	// was found; display the raw components instead
	ErrNoIntegerRepresentation = errors.New("no small integer representation")
	// ErrBadDirection is returned for direction text that cannot be parsed
	ErrBadDirection = errors.New("malformed direction")
)
