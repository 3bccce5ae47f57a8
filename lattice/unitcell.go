package lattice

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/notargets/gocryst/utils"
)

// UnitCell holds the lattice basis matrices derived from one set of Parameters.
// Columns of Direct are a, b, c in the cartesian frame, columns of Reciprocal
// are a*, b*, c*. A UnitCell is never modified after construction.
type UnitCell struct {
	Parameters    Parameters
	Volume        float64
	Direct        mgl64.Mat3
	DirectInv     mgl64.Mat3
	Reciprocal    mgl64.Mat3
	ReciprocalInv mgl64.Mat3
}

// NewUnitCell validates p and derives every matrix of the cell in one pass
func NewUnitCell(p Parameters) (uc *UnitCell, err error) {
	var (
		U, R, Uinv, Rinv mgl64.Mat3
		V                float64
	)
	if U, V, err = BuildUnitCell(p); err != nil {
		return
	}
	if R, err = BuildReciprocal(U, V); err != nil {
		return
	}
	if Uinv, err = utils.Invert3x3(U); err != nil {
		return nil, fmt.Errorf("direct basis of %s: %w", p, err)
	}
	if Rinv, err = utils.Invert3x3(R); err != nil {
		return nil, fmt.Errorf("reciprocal basis of %s: %w", p, err)
	}
	uc = &UnitCell{
		Parameters:    p,
		Volume:        V,
		Direct:        U,
		DirectInv:     Uinv,
		Reciprocal:    R,
		ReciprocalInv: Rinv,
	}
	return
}

// BuildUnitCell places a along x and b in the xy plane:
//
//	a = (a, 0, 0)
//	b = (b cosγ, b sinγ, 0)
//	c = (c cosβ, c (cosα - cosβ cosγ)/sinγ, V/(a b sinγ))
//
// Entries within ZEROTOL of zero are snapped to zero.
func BuildUnitCell(p Parameters) (U mgl64.Mat3, volume float64, err error) {
	if err = p.Validate(); err != nil {
		return
	}
	var (
		alpha, beta, gamma = p.Radians()
		ca, cb             = math.Cos(alpha), math.Cos(beta)
		cg, sg             = math.Cos(gamma), math.Sin(gamma)
	)
	volume = p.A * p.B * p.C * math.Sqrt(p.volumeRadicand())
	U = utils.SnapMat3(utils.MatFromColumns(
		mgl64.Vec3{p.A, 0, 0},
		mgl64.Vec3{p.B * cg, p.B * sg, 0},
		mgl64.Vec3{p.C * cb, p.C * (ca - cb*cg) / sg, volume / (p.A * p.B * sg)},
	), utils.ZEROTOL)
	return
}

// BuildReciprocal returns the matrix with columns a* = (b×c)/V, b* = (c×a)/V, c* = (a×b)/V
func BuildReciprocal(U mgl64.Mat3, volume float64) (R mgl64.Mat3, err error) {
	if !(volume > 0) || math.IsInf(volume, 0) {
		err = fmt.Errorf("cell volume %g: %w", volume, ErrInvalidCell)
		return
	}
	var (
		a, b, c = U.Col(0), U.Col(1), U.Col(2)
		oov     = 1. / volume
	)
	R = utils.MatFromColumns(
		b.Cross(c).Mul(oov),
		c.Cross(a).Mul(oov),
		a.Cross(b).Mul(oov),
	)
	return
}

// Axis returns lattice vector i (0,1,2 = a,b,c) of the direct basis or a*,b*,c*
// of the reciprocal basis
func (uc *UnitCell) Axis(b Basis, i int) (v mgl64.Vec3, err error) {
	var M mgl64.Mat3
	if i < 0 || i > 2 {
		err = fmt.Errorf("axis index %d outside 0..2: %w", i, ErrAxisIndex)
		return
	}
	if M, err = uc.Matrix(b); err != nil {
		return
	}
	v = M.Col(i)
	return
}

// Matrix returns the basis matrix mapping coordinates in b to cartesian
func (uc *UnitCell) Matrix(b Basis) (M mgl64.Mat3, err error) {
	switch b {
	case Direct:
		M = uc.Direct
	case Reciprocal:
		M = uc.Reciprocal
	case Cartesian:
		M = mgl64.Ident3()
	default:
		err = fmt.Errorf("%s: %w", b, ErrUnknownBasis)
	}
	return
}

// Inverse returns the matrix mapping cartesian coordinates into b
func (uc *UnitCell) Inverse(b Basis) (M mgl64.Mat3, err error) {
	switch b {
	case Direct:
		M = uc.DirectInv
	case Reciprocal:
		M = uc.ReciprocalInv
	case Cartesian:
		M = mgl64.Ident3()
	default:
		err = fmt.Errorf("%s: %w", b, ErrUnknownBasis)
	}
	return
}

// Homogeneous returns the direct basis as a 4x4 matrix, for composing with
// host rotation matrices
func (uc *UnitCell) Homogeneous() mgl64.Mat4 {
	return utils.To4x4(uc.Direct)
}
