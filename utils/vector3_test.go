package utils

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector3(t *testing.T) {
	var (
		x = mgl64.Vec3{1, 0, 0}
		y = mgl64.Vec3{0, 1, 0}
		z = mgl64.Vec3{0, 0, 1}
	)
	assert.Equal(t, 0., Dot(x, y))
	assert.Equal(t, z, Cross(x, y))
	assert.Equal(t, x, Cross(y, z))
	assert.Equal(t, 5., Norm(mgl64.Vec3{3, 4, 0}))
	// Normalize
	{
		u, err := Normalize(mgl64.Vec3{1, 1, 1})
		require.NoError(t, err)
		assert.InDelta(t, 1., u.Len(), 1.e-15)
		assert.InDelta(t, 1./math.Sqrt(3), u[2], 1.e-15)
		_, err = Normalize(mgl64.Vec3{})
		assert.ErrorIs(t, err, ErrDegenerateVector)
		_, err = Normalize(mgl64.Vec3{1.e-14, 0, 0})
		assert.ErrorIs(t, err, ErrDegenerateVector)
		_, err = Normalize(mgl64.Vec3{math.NaN(), 0, 0})
		assert.ErrorIs(t, err, ErrDegenerateVector)
	}
	// Project
	{
		p, err := Project(mgl64.Vec3{2, 3, 4}, mgl64.Vec3{0, 0, 2})
		require.NoError(t, err)
		assert.Equal(t, mgl64.Vec3{0, 0, 4}, p)
		p, err = Project(mgl64.Vec3{1, 1, 0}, mgl64.Vec3{1, 0, 0})
		require.NoError(t, err)
		assert.Equal(t, x, p)
		_, err = Project(x, mgl64.Vec3{})
		assert.ErrorIs(t, err, ErrDegenerateVector)
	}
	// Parallel
	{
		assert.True(t, IsParallel(x, x))
		assert.True(t, IsParallel(x, x.Mul(-1)))
		assert.False(t, IsParallel(x, y))
		u, _ := Normalize(mgl64.Vec3{1, 1.e-3, 0})
		assert.False(t, IsParallel(x, u))
	}
	// Snap
	{
		assert.Equal(t, 0., SnapToZero(9.e-6, ZEROTOL))
		assert.Equal(t, 0., SnapToZero(-1.e-5, ZEROTOL))
		assert.Equal(t, 2.e-5, SnapToZero(2.e-5, ZEROTOL))
		assert.Equal(t, mgl64.Vec3{0, 1, 0}, SnapVec3(mgl64.Vec3{1.e-7, 1, -3.e-6}, ZEROTOL))
		assert.True(t, IsZeroVec3(mgl64.Vec3{1.e-13, 0, 0}))
		assert.False(t, IsZeroVec3(z))
	}
}
