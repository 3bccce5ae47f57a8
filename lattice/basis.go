package lattice

import (
	"fmt"
	"strings"
)

// Basis names the coordinate system a vector is expressed in
type Basis uint8

const (
	Unspecified Basis = iota
	Direct            // [uvw], components along a, b, c
	Reciprocal        // (hkl), components along a*, b*, c*
	Cartesian         // x, y, z of the orthonormal frame the cell is built in
)

// Complement swaps Direct and Reciprocal; other values are returned unchanged
func (b Basis) Complement() Basis {
	switch b {
	case Direct:
		return Reciprocal
	case Reciprocal:
		return Direct
	}
	return b
}

// Or returns b, or def when b is Unspecified
func (b Basis) Or(def Basis) Basis {
	if b == Unspecified {
		return def
	}
	return b
}

func (b Basis) String() string {
	switch b {
	case Direct:
		return "direct"
	case Reciprocal:
		return "reciprocal"
	case Cartesian:
		return "cartesian"
	}
	return "unspecified"
}

func ParseBasis(label string) (b Basis, err error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "direct", "uvw", "real":
		b = Direct
	case "reciprocal", "hkl", "recip":
		b = Reciprocal
	case "cartesian", "xyz":
		b = Cartesian
	case "", "unspecified":
		b = Unspecified
	default:
		err = fmt.Errorf("%q: %w", label, ErrUnknownBasis)
	}
	return
}
