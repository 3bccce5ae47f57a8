package view

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/notargets/gocryst/lattice"
)

// Reading is one camera axis expressed in a lattice basis
type Reading struct {
	Basis lattice.Basis
	// Raw holds the components in Basis, scaled so the largest magnitude is 1
	Raw      mgl64.Vec3
	Miller   Miller
	Resolved bool // Miller is valid
}

func (r Reading) String() string {
	if r.Resolved {
		return r.Miller.Format(r.Basis)
	}
	return fmt.Sprintf("%8.5f", r.Raw)
}

// ReadViewVectors recovers the projection (Z row) and up (Y row) directions
// of a camera frame in the target basis, reduced to small integers where
// possible. The frame usually comes from a rotation matrix the host applied.
func ReadViewVectors(cell *lattice.UnitCell, f Frame, target lattice.Basis, maxInt int) (proj, up Reading, err error) {
	if proj, err = read(cell, f.Z, target, maxInt); err != nil {
		err = fmt.Errorf("projection axis: %w", err)
		return
	}
	if up, err = read(cell, f.Y, target, maxInt); err != nil {
		err = fmt.Errorf("up axis: %w", err)
	}
	return
}

func read(cell *lattice.UnitCell, axis mgl64.Vec3, target lattice.Basis, maxInt int) (r Reading, err error) {
	var v mgl64.Vec3
	if v, err = cell.FromCartesian(axis, target); err != nil {
		return
	}
	// Scale to unit max norm so the zero threshold of the reduction is
	// independent of the cell size
	var big float64
	for _, c := range v {
		big = math.Max(big, math.Abs(c))
	}
	if big == 0 || math.IsNaN(big) {
		err = ErrDegenerateVector
		return
	}
	r = Reading{Basis: target, Raw: v.Mul(1. / big)}
	r.Miller, err = ReduceToIntegers(r.Raw, maxInt)
	switch {
	case err == nil:
		r.Resolved = true
	case errors.Is(err, ErrNoIntegerRepresentation):
		err = nil
	}
	return
}
