package lattice

import (
	"fmt"
	"math"
)

// Parameters are the six lattice constants; lengths in Angstrom, angles in degrees
type Parameters struct {
	A, B, C            float64
	Alpha, Beta, Gamma float64
}

// NewParameters builds Parameters from [a, b, c, alpha, beta, gamma]
func NewParameters(vals []float64) (p Parameters, err error) {
	if len(vals) != 6 {
		err = fmt.Errorf("need 6 lattice parameters (a b c alpha beta gamma), have %d: %w",
			len(vals), ErrInvalidCell)
		return
	}
	p = Parameters{A: vals[0], B: vals[1], C: vals[2],
		Alpha: vals[3], Beta: vals[4], Gamma: vals[5]}
	return
}

func (p Parameters) Slice() []float64 {
	return []float64{p.A, p.B, p.C, p.Alpha, p.Beta, p.Gamma}
}

func (p Parameters) Radians() (alpha, beta, gamma float64) {
	const d2r = math.Pi / 180.
	return p.Alpha * d2r, p.Beta * d2r, p.Gamma * d2r
}

// Identical compares bit patterns, so a NaN matches the same NaN and 0 != -0
func (p Parameters) Identical(q Parameters) bool {
	pv, qv := p.Slice(), q.Slice()
	for i := range pv {
		if math.Float64bits(pv[i]) != math.Float64bits(qv[i]) {
			return false
		}
	}
	return true
}

// volumeRadicand is 1 - cos²α - cos²β - cos²γ + 2cosα·cosβ·cosγ
func (p Parameters) volumeRadicand() float64 {
	alpha, beta, gamma := p.Radians()
	ca, cb, cg := math.Cos(alpha), math.Cos(beta), math.Cos(gamma)
	return 1. - ca*ca - cb*cb - cg*cg + 2.*ca*cb*cg
}

func (p Parameters) Validate() error {
	for i, v := range p.Slice() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("parameter %s is not finite: %w", paramNames[i], ErrInvalidCell)
		}
	}
	if p.A <= 0 || p.B <= 0 || p.C <= 0 {
		return fmt.Errorf("cell lengths must be positive, have a=%g b=%g c=%g: %w",
			p.A, p.B, p.C, ErrInvalidCell)
	}
	for i, ang := range []float64{p.Alpha, p.Beta, p.Gamma} {
		if ang <= 0 || ang >= 180 {
			return fmt.Errorf("angle %s=%g outside (0,180): %w", paramNames[i+3], ang, ErrInvalidCell)
		}
	}
	if r := p.volumeRadicand(); !(r > 0) {
		return fmt.Errorf("angles alpha=%g beta=%g gamma=%g do not close a cell (radicand %g): %w",
			p.Alpha, p.Beta, p.Gamma, r, ErrInvalidCell)
	}
	return nil
}

func (p Parameters) String() string {
	return fmt.Sprintf("a=%g b=%g c=%g alpha=%g beta=%g gamma=%g",
		p.A, p.B, p.C, p.Alpha, p.Beta, p.Gamma)
}

var paramNames = [6]string{"a", "b", "c", "alpha", "beta", "gamma"}
