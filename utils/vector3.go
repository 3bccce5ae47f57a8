package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

func Dot(u, v mgl64.Vec3) float64 { return u.Dot(v) }

func Cross(u, v mgl64.Vec3) mgl64.Vec3 { return u.Cross(v) }

func Norm(v mgl64.Vec3) float64 { return v.Len() }

// Normalize returns v/|v|. A vector shorter than NODETOL has no direction.
func Normalize(v mgl64.Vec3) (u mgl64.Vec3, err error) {
	n := v.Len()
	if n < NODETOL || math.IsNaN(n) || math.IsInf(n, 0) {
		err = ErrDegenerateVector
		return
	}
	u = v.Mul(1. / n)
	return
}

// Project returns the component of u along v: (u.v / v.v) v
func Project(u, v mgl64.Vec3) (p mgl64.Vec3, err error) {
	vv := v.Dot(v)
	if vv < NODETOL*NODETOL {
		err = ErrDegenerateVector
		return
	}
	p = v.Mul(u.Dot(v) / vv)
	return
}

// IsParallel reports whether unit vectors u and v are parallel or antiparallel
func IsParallel(u, v mgl64.Vec3) bool {
	return math.Abs(u.Dot(v)) > 1.-PARALLELTOL
}

func SnapToZero(x, tol float64) float64 {
	if scalar.EqualWithinAbs(x, 0, tol) {
		return 0
	}
	return x
}

func SnapVec3(v mgl64.Vec3, tol float64) (r mgl64.Vec3) {
	for i := range v {
		r[i] = SnapToZero(v[i], tol)
	}
	return
}

func IsZeroVec3(v mgl64.Vec3) bool {
	return v.Len() < NODETOL
}

// Vec3EqualWithin compares componentwise with an absolute tolerance
func Vec3EqualWithin(u, v mgl64.Vec3, tol float64) bool {
	return floats.EqualApprox(u[:], v[:], tol)
}
