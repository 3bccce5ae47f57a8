package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Invert3x3 returns the inverse of M. A determinant that is zero to within
// round-off of the column scales is singular; callers wanting a looser
// conditioning limit apply it themselves.
func Invert3x3(M mgl64.Mat3) (Minv mgl64.Mat3, err error) {
	det := M.Det()
	scale := M.Col(0).Len() * M.Col(1).Len() * M.Col(2).Len()
	if det == 0 || math.IsNaN(det) || math.Abs(det) <= SINGULARTOL*scale {
		err = ErrSingularMatrix
		return
	}
	Minv = M.Inv()
	return
}

// To4x4 embeds M in a homogeneous matrix with a zero translation
func To4x4(M mgl64.Mat3) mgl64.Mat4 { return M.Mat4() }

// To3x3 extracts the linear (upper left) block of a homogeneous matrix
func To3x3(M mgl64.Mat4) mgl64.Mat3 { return M.Mat3() }

func MatFromColumns(c0, c1, c2 mgl64.Vec3) mgl64.Mat3 {
	return mgl64.Mat3FromCols(c0, c1, c2)
}

func MatVec(M mgl64.Mat3, v mgl64.Vec3) mgl64.Vec3 { return M.Mul3x1(v) }

// SnapMat3 zeroes every entry within tol of zero
func SnapMat3(M mgl64.Mat3, tol float64) (R mgl64.Mat3) {
	for i := range M {
		R[i] = SnapToZero(M[i], tol)
	}
	return
}

// ToDense copies a mgl64 matrix into a gonum dense matrix, row major
func ToDense(M mgl64.Mat3) (R *mat.Dense) {
	R = mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R.Set(i, j, M.At(i, j))
		}
	}
	return
}

func ToDense4(M mgl64.Mat4) (R *mat.Dense) {
	R = mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			R.Set(i, j, M.At(i, j))
		}
	}
	return
}

// FromDense reads a 3x3 or 4x4 gonum matrix; the 4x4 case keeps the linear block
func FromDense(D mat.Matrix) (M mgl64.Mat3, ok bool) {
	nr, nc := D.Dims()
	if !((nr == 3 && nc == 3) || (nr == 4 && nc == 4)) {
		return
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			M.Set(i, j, D.At(i, j))
		}
	}
	ok = true
	return
}

// Mat3EqualWithin compares entrywise with an absolute tolerance
func Mat3EqualWithin(A, B mgl64.Mat3, tol float64) bool {
	return floats.EqualApprox(A[:], B[:], tol)
}
