package view

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/notargets/gocryst/lattice"
)

// maxMillerIndex bounds the magnitude of a reduced component
const maxMillerIndex = math.MaxInt32

// Miller is an integer direction [uvw] or plane normal (hkl)
type Miller [3]int

func (m Miller) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{float64(m[0]), float64(m[1]), float64(m[2])}
}

// Format writes m as [u v w] for Direct, (h k l) for Reciprocal and
// bare components otherwise
func (m Miller) Format(b lattice.Basis) string {
	s := make([]string, 3)
	for i, v := range m {
		s[i] = strconv.Itoa(v)
	}
	body := strings.Join(s, " ")
	switch b {
	case lattice.Direct:
		return "[" + body + "]"
	case lattice.Reciprocal:
		return "(" + body + ")"
	}
	return body
}

func (m Miller) String() string { return m.Format(lattice.Unspecified) }

// ReduceToIntegers finds the smallest i in [1, maxInt] for which v·i/s lies
// within IntegerTolerance of an integer triple in every component, where s is
// the smallest component magnitude of v. Components below IntegerZeroTol are
// taken as zero and do not set s. maxInt <= 0 selects DefaultMaxInt.
// Components that would round beyond MaxInt32 have no integer form.
// ErrNoIntegerRepresentation is an expected result for irrational directions.
func ReduceToIntegers(v mgl64.Vec3, maxInt int) (m Miller, err error) {
	var (
		w       mgl64.Vec3
		s       = math.Inf(1)
		nonZero bool
	)
	if maxInt <= 0 {
		maxInt = DefaultMaxInt
	}
	for j, val := range v {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			err = fmt.Errorf("component %d of %v: %w", j, v, ErrDegenerateVector)
			return
		}
		if math.Abs(val) < IntegerZeroTol {
			continue
		}
		w[j] = val
		nonZero = true
		s = math.Min(s, math.Abs(val))
	}
	if !nonZero {
		err = fmt.Errorf("%v: %w", v, ErrDegenerateVector)
		return
	}
	for i := 1; i <= maxInt; i++ {
		var (
			f     = float64(i) / s
			match = true
		)
		for j := range w {
			cand := w[j] * f
			r := math.Round(cand)
			if math.Abs(r) > maxMillerIndex {
				// Later multipliers only grow the components
				err = fmt.Errorf("%v exceeds index %d: %w", v, maxMillerIndex, ErrNoIntegerRepresentation)
				return Miller{}, err
			}
			if !scalar.EqualWithinAbs(cand, r, IntegerTolerance) {
				match = false
				break
			}
			m[j] = int(r)
		}
		if match {
			return
		}
	}
	m = Miller{}
	err = fmt.Errorf("%v within %d: %w", v, maxInt, ErrNoIntegerRepresentation)
	return
}
