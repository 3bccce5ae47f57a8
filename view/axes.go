package view

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/notargets/gocryst/lattice"
	"github.com/notargets/gocryst/utils"
)

// Axis is one lattice basis vector placed for an axis overlay
type Axis struct {
	Label     string
	Vector    mgl64.Vec3 // cartesian lattice vector
	Length    float64
	Direction mgl64.Vec3 // unit cartesian direction
	Screen    mgl64.Vec3 // Direction in camera coordinates
}

var axisLabels = map[lattice.Basis][3]string{
	lattice.Direct:     {"a", "b", "c"},
	lattice.Reciprocal: {"a*", "b*", "c*"},
}

// Axes returns a, b, c (Direct) or a*, b*, c* (Reciprocal) as seen through f
func Axes(cell *lattice.UnitCell, f Frame, b lattice.Basis) (axes [3]Axis, err error) {
	if _, ok := axisLabels[b]; !ok {
		err = lattice.ErrUnknownBasis
		return
	}
	for i := range axes {
		ax := &axes[i]
		ax.Label = axisLabels[b][i]
		if ax.Vector, err = cell.Axis(b, i); err != nil {
			return
		}
		ax.Length = ax.Vector.Len()
		if ax.Direction, err = utils.Normalize(ax.Vector); err != nil {
			return
		}
		ax.Screen = f.Apply(ax.Direction)
	}
	return
}
