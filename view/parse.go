package view

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/notargets/gocryst/lattice"
)

// ParseDirection reads crystallographic direction text. "[u v w]" is a direct
// lattice direction, "(h k l)" a reciprocal one and bare components take def.
// Components are separated by spaces or commas; a single run of signed digits
// such as "1-10" is read one digit per component.
func ParseDirection(text string, def lattice.Basis) (v mgl64.Vec3, b lattice.Basis, err error) {
	body := strings.TrimSpace(text)
	b = def
	switch {
	case strings.HasPrefix(body, "[") && strings.HasSuffix(body, "]"):
		b = lattice.Direct
		body = body[1 : len(body)-1]
	case strings.HasPrefix(body, "(") && strings.HasSuffix(body, ")"):
		b = lattice.Reciprocal
		body = body[1 : len(body)-1]
	}
	fields := strings.FieldsFunc(body, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	if len(fields) == 1 {
		if fields, err = splitCompact(fields[0]); err != nil {
			err = fmt.Errorf("%q: %w", text, err)
			return
		}
	}
	if len(fields) != 3 {
		err = fmt.Errorf("%q has %d components, need 3: %w", text, len(fields), ErrBadDirection)
		return
	}
	for i, f := range fields {
		if v[i], err = strconv.ParseFloat(f, 64); err != nil {
			err = fmt.Errorf("%q component %d: %w", text, i, ErrBadDirection)
			return
		}
	}
	return
}

func splitCompact(s string) (fields []string, err error) {
	var sign string
	for _, r := range s {
		switch {
		case r == '-' && sign == "":
			sign = "-"
		case unicode.IsDigit(r):
			fields = append(fields, sign+string(r))
			sign = ""
		default:
			return nil, ErrBadDirection
		}
	}
	if sign != "" {
		return nil, ErrBadDirection
	}
	return
}

// NewRequest builds a Request from direction text. An empty up leaves the
// default up hint in place; a bare up takes the basis of the projection.
func NewRequest(along, up string, tolerance float64) (req Request, err error) {
	if req.Projection, req.Basis, err = ParseDirection(along, lattice.Direct); err != nil {
		return
	}
	req.Tolerance = tolerance
	if strings.TrimSpace(up) == "" {
		return
	}
	var u mgl64.Vec3
	if u, req.UpBasis, err = ParseDirection(up, req.Basis); err != nil {
		return
	}
	req.Up = &u
	return
}
