package view

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gocryst/lattice"
)

func TestReduceToIntegers(t *testing.T) {
	cases := []struct {
		in   mgl64.Vec3
		want Miller
	}{
		{mgl64.Vec3{0.7, 0.7, 0.7}, Miller{1, 1, 1}},
		{mgl64.Vec3{-0.0731261447, 0.0, 0.0548446104}, Miller{-4, 0, 3}},
		{mgl64.Vec3{0.333333, 0.111111, 0.777777}, Miller{3, 1, 7}},
		{mgl64.Vec3{0.5, -1, 0}, Miller{1, -2, 0}},
		{mgl64.Vec3{-0.5, -0.5, 0.0004}, Miller{-1, -1, 0}},
		{mgl64.Vec3{0, 0, -12.5}, Miller{0, 0, -1}},
		{mgl64.Vec3{0.25, 0.5, 0.2}, Miller{5, 10, 4}},
	}
	for _, c := range cases {
		m, err := ReduceToIntegers(c.in, DefaultMaxInt)
		require.NoError(t, err, "%v", c.in)
		assert.Equal(t, c.want, m, "%v", c.in)
	}
	{ // The multiplier bound is a parameter: 99/70 approximates sqrt(2)
		v := mgl64.Vec3{1, math.Sqrt2, 0}
		_, err := ReduceToIntegers(v, 10)
		assert.ErrorIs(t, err, ErrNoIntegerRepresentation)
		m, err := ReduceToIntegers(v, 100)
		require.NoError(t, err)
		assert.Equal(t, Miller{70, 99, 0}, m)
		m, err = ReduceToIntegers(v, 0)
		require.NoError(t, err)
		assert.Equal(t, Miller{70, 99, 0}, m)
	}
	{ // Noise from a rotation matrix is absorbed by the 0.01 tolerance
		m, err := ReduceToIntegers(mgl64.Vec3{0.57735, 0.5774, 0.57731}, 100)
		require.NoError(t, err)
		assert.Equal(t, Miller{1, 1, 1}, m)
	}
	{ // Huge component ratios do not overflow into a bogus triple
		for _, v := range []mgl64.Vec3{{1.e20, 1, 0}, {1.e300, 1, 1}, {-3.e9, 1, 0}} {
			m, err := ReduceToIntegers(v, 100)
			assert.ErrorIs(t, err, ErrNoIntegerRepresentation, "%v", v)
			assert.Equal(t, Miller{}, m)
		}
		m, err := ReduceToIntegers(mgl64.Vec3{1.e6, 1, 0}, 100)
		require.NoError(t, err)
		assert.Equal(t, Miller{1000000, 1, 0}, m)
	}
	{
		_, err := ReduceToIntegers(mgl64.Vec3{}, 100)
		assert.ErrorIs(t, err, ErrDegenerateVector)
		_, err = ReduceToIntegers(mgl64.Vec3{1.e-4, -5.e-4, 0}, 100)
		assert.ErrorIs(t, err, ErrDegenerateVector)
		_, err = ReduceToIntegers(mgl64.Vec3{math.NaN(), 1, 0}, 100)
		assert.ErrorIs(t, err, ErrDegenerateVector)
	}
}

func TestMillerFormat(t *testing.T) {
	m := Miller{1, -1, 0}
	assert.Equal(t, "[1 -1 0]", m.Format(lattice.Direct))
	assert.Equal(t, "(1 -1 0)", m.Format(lattice.Reciprocal))
	assert.Equal(t, "1 -1 0", m.Format(lattice.Cartesian))
	assert.Equal(t, "1 -1 0", m.String())
	assert.Equal(t, mgl64.Vec3{1, -1, 0}, m.Vec3())
}

func TestReadViewVectors(t *testing.T) {
	{ // Solve then read back recovers the requested indices
		type tc struct {
			p        lattice.Parameters
			req      Request
			target   lattice.Basis
			wantProj Miller
		}
		for _, c := range []tc{
			{cubic, Request{Projection: mgl64.Vec3{1, 1, 0}, Up: vec(0, 0, 1)}, lattice.Direct, Miller{1, 1, 0}},
			{hexagonal, Request{Projection: mgl64.Vec3{2, -1, 0}}, lattice.Direct, Miller{2, -1, 0}},
			{triclinic, Request{Projection: mgl64.Vec3{1, 2, 3}}, lattice.Direct, Miller{1, 2, 3}},
			{triclinic, Request{Projection: mgl64.Vec3{-1, 1, 1}, Basis: lattice.Reciprocal}, lattice.Reciprocal, Miller{-1, 1, 1}},
		} {
			uc := newCell(t, c.p)
			sol, err := Solve(uc, c.req)
			require.NoError(t, err)
			proj, _, err := ReadViewVectors(uc, sol.Frame, c.target, DefaultMaxInt)
			require.NoError(t, err)
			assert.True(t, proj.Resolved, "%s %s", c.p, c.req)
			assert.Equal(t, c.wantProj, proj.Miller)
			assert.Equal(t, c.target, proj.Basis)
		}
	}
	{ // The up row of a hexagonal view along a reads as (0 0 1)
		uc := newCell(t, hexagonal)
		sol, err := Solve(uc, Request{Projection: mgl64.Vec3{1, 0, 0}})
		require.NoError(t, err)
		proj, up, err := ReadViewVectors(uc, sol.Frame, lattice.Reciprocal, DefaultMaxInt)
		require.NoError(t, err)
		assert.True(t, up.Resolved)
		assert.Equal(t, "(0 0 1)", up.String())
		// a is the normal of (2 -1 0) in a hexagonal cell
		assert.True(t, proj.Resolved)
		assert.Equal(t, "(2 -1 0)", proj.String())
	}
	{ // Directions with no small integer form keep their raw components
		uc := newCell(t, cubic)
		z := mgl64.Vec3{1, math.Sqrt2, 0}.Normalize()
		f := Frame{X: mgl64.Vec3{0, 0, 1}.Cross(z), Y: mgl64.Vec3{0, 0, 1}, Z: z}
		proj, up, err := ReadViewVectors(uc, f, lattice.Direct, 10)
		require.NoError(t, err)
		assert.False(t, proj.Resolved)
		assert.InDelta(t, 1./math.Sqrt2, proj.Raw[0], 1.e-12)
		assert.InDelta(t, 1., proj.Raw[1], 1.e-12)
		assert.Contains(t, proj.String(), "0.70711")
		assert.True(t, up.Resolved)
		assert.Equal(t, "[0 0 1]", up.String())
	}
	{
		uc := newCell(t, cubic)
		_, _, err := ReadViewVectors(uc, Frame{}, lattice.Direct, 10)
		assert.ErrorIs(t, err, ErrDegenerateVector)
		_, _, err = ReadViewVectors(uc, Frame{Z: mgl64.Vec3{0, 0, 1}}, lattice.Unspecified, 10)
		assert.ErrorIs(t, err, lattice.ErrUnknownBasis)
	}
}
