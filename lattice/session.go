package lattice

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Session caches the UnitCell of the active structure. The adapter layer calls
// SetParameters whenever the host reports new cell data; everything else reads.
// A Session is not safe for concurrent use.
type Session struct {
	cell *UnitCell
}

func NewSession() *Session { return &Session{} }

// SetParameters rebuilds the cell unless p is bit-identical to the cached
// parameters. On error the previous cell stays in place.
func (s *Session) SetParameters(p Parameters) (changed bool, err error) {
	if s.cell != nil && s.cell.Parameters.Identical(p) {
		return
	}
	var uc *UnitCell
	if uc, err = NewUnitCell(p); err != nil {
		return
	}
	// Replace, never modify: readers holding the old cell keep a consistent copy
	s.cell = uc
	changed = true
	return
}

func (s *Session) SetLatticeParameters(a, b, c, alpha, beta, gamma float64) (err error) {
	_, err = s.SetParameters(Parameters{A: a, B: b, C: c, Alpha: alpha, Beta: beta, Gamma: gamma})
	return
}

// Cell returns a copy of the current unit cell
func (s *Session) Cell() (uc UnitCell, err error) {
	if s.cell == nil {
		err = ErrNoCell
		return
	}
	uc = *s.cell
	return
}

func (s *Session) HasCell() bool { return s.cell != nil }

func (s *Session) CellVolume() (float64, error) {
	if s.cell == nil {
		return 0, ErrNoCell
	}
	return s.cell.Volume, nil
}

func (s *Session) LatticeParameters() (Parameters, error) {
	if s.cell == nil {
		return Parameters{}, ErrNoCell
	}
	return s.cell.Parameters, nil
}

func (s *Session) DirectToCartesian(uvw mgl64.Vec3) (mgl64.Vec3, error) {
	if s.cell == nil {
		return mgl64.Vec3{}, ErrNoCell
	}
	return s.cell.DirectToCartesian(uvw)
}

func (s *Session) CartesianToDirect(xyz mgl64.Vec3) (mgl64.Vec3, error) {
	if s.cell == nil {
		return mgl64.Vec3{}, ErrNoCell
	}
	return s.cell.CartesianToDirect(xyz), nil
}

func (s *Session) ReciprocalToCartesian(hkl mgl64.Vec3) (mgl64.Vec3, error) {
	if s.cell == nil {
		return mgl64.Vec3{}, ErrNoCell
	}
	return s.cell.ReciprocalToCartesian(hkl)
}

func (s *Session) CartesianToReciprocal(xyz mgl64.Vec3) (mgl64.Vec3, error) {
	if s.cell == nil {
		return mgl64.Vec3{}, ErrNoCell
	}
	return s.cell.CartesianToReciprocal(xyz), nil
}
