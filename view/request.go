package view

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/notargets/gocryst/lattice"
	"github.com/notargets/gocryst/utils"
)

const (
	// DefaultTolerance is the |cos| between projection and up above which the
	// up vector is Gram-Schmidt corrected
	DefaultTolerance = 1.e-2
	// DefaultMaxInt bounds the integer multiplier search of ReduceToIntegers
	DefaultMaxInt = 100
	// IntegerTolerance is the per component distance to an integer accepted
	// by ReduceToIntegers
	IntegerTolerance = 0.01
	// IntegerZeroTol marks components treated as exactly zero by ReduceToIntegers
	IntegerZeroTol = 1.e-3
)

// Request describes a view to solve for.
// Basis is the basis of Projection, Direct when unspecified. A nil Up selects
// (0,0,1) in the complementary basis, so a view along a direct lattice vector
// gets a reciprocal up hint and vice versa. An explicit Up is expressed in
// UpBasis, which defaults to Basis. Tolerance defaults to DefaultTolerance.
type Request struct {
	Projection mgl64.Vec3
	Basis      lattice.Basis
	Up         *mgl64.Vec3
	UpBasis    lattice.Basis
	Tolerance  float64
}

func (r Request) projectionBasis() lattice.Basis { return r.Basis.Or(lattice.Direct) }

func (r Request) upVector() (up mgl64.Vec3, b lattice.Basis) {
	if r.Up == nil {
		return mgl64.Vec3{0, 0, 1}, r.projectionBasis().Complement()
	}
	return *r.Up, r.UpBasis.Or(r.projectionBasis())
}

func (r Request) tolerance() float64 {
	if r.Tolerance <= 0 {
		return DefaultTolerance
	}
	return r.Tolerance
}

// cartesian returns the unit cartesian projection and up hint of the request
func (r Request) cartesian(cell *lattice.UnitCell) (z, yHint mgl64.Vec3, err error) {
	var (
		pb      = r.projectionBasis()
		up, ub  = r.upVector()
		zc, ycc mgl64.Vec3
	)
	if zc, err = cell.ToCartesian(r.Projection, pb); err != nil {
		return
	}
	if z, err = utils.Normalize(zc); err != nil {
		err = fmt.Errorf("projection vector %v (%s): %w", r.Projection, pb, err)
		return
	}
	if ycc, err = cell.ToCartesian(up, ub); err != nil {
		return
	}
	if yHint, err = utils.Normalize(ycc); err != nil {
		err = fmt.Errorf("up vector %v (%s): %w", up, ub, err)
	}
	return
}

func (r Request) String() string {
	up, ub := r.upVector()
	return fmt.Sprintf("along %v (%s), up %v (%s)", r.Projection, r.projectionBasis(), up, ub)
}
