package lattice

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/notargets/gocryst/utils"
)

// DirectToCartesian returns the unit cartesian direction of [uvw].
// Only the direction is kept; use DirectToCartesianRaw for the full vector.
func (uc *UnitCell) DirectToCartesian(uvw mgl64.Vec3) (mgl64.Vec3, error) {
	return utils.Normalize(uc.DirectToCartesianRaw(uvw))
}

func (uc *UnitCell) DirectToCartesianRaw(uvw mgl64.Vec3) mgl64.Vec3 {
	return utils.MatVec(uc.Direct, uvw)
}

// CartesianToDirect keeps magnitude, so it inverts DirectToCartesianRaw
func (uc *UnitCell) CartesianToDirect(xyz mgl64.Vec3) mgl64.Vec3 {
	return utils.MatVec(uc.DirectInv, xyz)
}

// ReciprocalToCartesian returns the unit cartesian direction of (hkl), the
// normal of the (hkl) plane
func (uc *UnitCell) ReciprocalToCartesian(hkl mgl64.Vec3) (mgl64.Vec3, error) {
	return utils.Normalize(uc.ReciprocalToCartesianRaw(hkl))
}

func (uc *UnitCell) ReciprocalToCartesianRaw(hkl mgl64.Vec3) mgl64.Vec3 {
	return utils.MatVec(uc.Reciprocal, hkl)
}

func (uc *UnitCell) CartesianToReciprocal(xyz mgl64.Vec3) mgl64.Vec3 {
	return utils.MatVec(uc.ReciprocalInv, xyz)
}

// ToCartesian maps v, expressed in b, into the cartesian frame without normalizing
func (uc *UnitCell) ToCartesian(v mgl64.Vec3, b Basis) (r mgl64.Vec3, err error) {
	var M mgl64.Mat3
	if M, err = uc.Matrix(b); err != nil {
		return
	}
	r = utils.MatVec(M, v)
	return
}

func (uc *UnitCell) FromCartesian(xyz mgl64.Vec3, b Basis) (r mgl64.Vec3, err error) {
	var M mgl64.Mat3
	if M, err = uc.Inverse(b); err != nil {
		return
	}
	r = utils.MatVec(M, xyz)
	return
}
