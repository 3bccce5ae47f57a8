package view

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/notargets/gocryst/lattice"
	"github.com/notargets/gocryst/utils"
)

// Solution is a solved camera frame and how the up hint was treated
type Solution struct {
	Frame
	// Substituted is set when the up hint was parallel to the projection and
	// a cartesian axis was used in its place
	Substituted bool
	// Corrected is set when the up hint was Gram-Schmidt orthogonalized
	Corrected bool
	// UpHint is the unit cartesian up hint that entered orthogonalization
	UpHint mgl64.Vec3
}

// fallbackUp lists the cartesian up hints tried, in order, when the requested
// up vector is parallel to the projection
var fallbackUp = []mgl64.Vec3{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}}

// Solve returns the orthonormal, right handed camera frame looking along the
// requested projection with Y as close to the requested up vector as possible.
func Solve(cell *lattice.UnitCell, req Request) (sol Solution, err error) {
	var (
		z, yHint mgl64.Vec3
		tol      = req.tolerance()
	)
	if z, yHint, err = req.cartesian(cell); err != nil {
		return
	}
	if utils.IsParallel(z, yHint) {
		if yHint, err = substituteUp(z); err != nil {
			err = fmt.Errorf("%s: %w", req, err)
			return
		}
		sol.Substituted = true
	}
	sol.UpHint = yHint
	y := yHint
	if NeedsOrthogonalization(z, yHint, tol) {
		var p mgl64.Vec3
		if p, err = utils.Project(yHint, z); err != nil {
			return
		}
		if y, err = utils.Normalize(yHint.Sub(p)); err != nil {
			return
		}
		sol.Corrected = true
	}
	var x mgl64.Vec3
	if x, err = utils.Normalize(y.Cross(z)); err != nil {
		return
	}
	// Close the frame; when y is already orthogonal to z this returns y
	y = z.Cross(x)
	sol.Frame = Frame{X: x, Y: y, Z: z}
	return
}

func substituteUp(z mgl64.Vec3) (mgl64.Vec3, error) {
	for _, cand := range fallbackUp {
		if !utils.IsParallel(z, cand) {
			return cand, nil
		}
	}
	return mgl64.Vec3{}, ErrParallelAxes
}

// NeedsOrthogonalization reports whether the unit vectors proj and up are
// further from perpendicular than tolerance allows (|proj·up| > tolerance).
// An interactive caller can use a larger tolerance to decide whether to ask
// before correcting the up vector.
func NeedsOrthogonalization(proj, up mgl64.Vec3, tolerance float64) bool {
	return math.Abs(proj.Dot(up)) > tolerance
}

// RequestNeedsOrthogonalization evaluates NeedsOrthogonalization on the
// cartesian form of req, using tolerance in place of req.Tolerance when it is
// positive
func RequestNeedsOrthogonalization(cell *lattice.UnitCell, req Request, tolerance float64) (bool, error) {
	z, yHint, err := req.cartesian(cell)
	if err != nil {
		return false, err
	}
	if tolerance <= 0 {
		tolerance = req.tolerance()
	}
	return NeedsOrthogonalization(z, yHint, tolerance), nil
}
