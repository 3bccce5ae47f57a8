package view

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/notargets/gocryst/utils"
)

// Frame is the camera orientation: rows X (right), Y (up) and Z (the
// projection axis), orthonormal and right handed with X = Y × Z.
type Frame struct {
	X, Y, Z mgl64.Vec3
}

// Mat3 returns the rotation taking cartesian coordinates into the camera frame
func (f Frame) Mat3() mgl64.Mat3 {
	return mgl64.Mat3FromRows(f.X, f.Y, f.Z)
}

func (f Frame) Mat4() mgl64.Mat4 {
	return utils.To4x4(f.Mat3())
}

// FrameFromMat3 reads the rows of a rotation matrix, such as the one a host
// applies to displayed geometry
func FrameFromMat3(M mgl64.Mat3) Frame {
	return Frame{X: M.Row(0), Y: M.Row(1), Z: M.Row(2)}
}

func FrameFromMat4(M mgl64.Mat4) Frame {
	return FrameFromMat3(utils.To3x3(M))
}

// Apply expresses the cartesian vector v in camera coordinates
func (f Frame) Apply(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{f.X.Dot(v), f.Y.Dot(v), f.Z.Dot(v)}
}

func (f Frame) IsOrthonormal(tol float64) bool {
	for _, v := range []mgl64.Vec3{f.X, f.Y, f.Z} {
		if math.Abs(v.Len()-1) > tol {
			return false
		}
	}
	return math.Abs(f.X.Dot(f.Y)) <= tol && math.Abs(f.Y.Dot(f.Z)) <= tol && math.Abs(f.X.Dot(f.Z)) <= tol
}

func (f Frame) IsRightHanded(tol float64) bool {
	return utils.Vec3EqualWithin(f.X, f.Y.Cross(f.Z), tol)
}

func (f Frame) String() string {
	return fmt.Sprintf("x = %8.5f\ny = %8.5f\nz = %8.5f", f.X, f.Y, f.Z)
}
