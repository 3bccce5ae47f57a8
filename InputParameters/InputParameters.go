package InputParameters

import (
	"fmt"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/notargets/gocryst/lattice"
	"github.com/notargets/gocryst/view"
)

// ViewSpec is one named view from the input file
type ViewSpec struct {
	Name  string `yaml:"Name"`
	Along string `yaml:"Along"`
	Up    string `yaml:"Up"` // Optional, defaults to (0 0 1) in the basis complementary to Along
}

// Parameters obtained from the YAML input file
type InputParameters struct {
	Title     string     `yaml:"Title"`
	Cell      []float64  `yaml:"Cell"` // a, b, c, alpha, beta, gamma
	MaxInt    int        `yaml:"MaxInt"`
	Tolerance float64    `yaml:"Tolerance"`
	Views     []ViewSpec `yaml:"Views"`
}

func (ip *InputParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters) Validate() (err error) {
	if _, err = ip.LatticeParameters(); err != nil {
		return
	}
	for i, v := range ip.Views {
		if _, err = v.Request(ip.Tolerance); err != nil {
			return fmt.Errorf("view %d (%s): %w", i, v.Name, err)
		}
	}
	return
}

func (ip *InputParameters) LatticeParameters() (p lattice.Parameters, err error) {
	if p, err = lattice.NewParameters(ip.Cell); err != nil {
		return
	}
	err = p.Validate()
	return
}

func (vs ViewSpec) Request(tolerance float64) (view.Request, error) {
	return view.NewRequest(vs.Along, vs.Up, tolerance)
}

func (ip *InputParameters) Print() {
	fmt.Print(ip.String())
}

func (ip *InputParameters) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(&sb, "%v\t= Cell\n", ip.Cell)
	fmt.Fprintf(&sb, "[%d]\t\t\t\t= MaxInt\n", ip.MaxInt)
	fmt.Fprintf(&sb, "%8.5f\t\t= Tolerance\n", ip.Tolerance)
	for _, v := range ip.Views {
		fmt.Fprintf(&sb, "Views[%s] = along %s", v.Name, v.Along)
		if len(v.Up) != 0 {
			fmt.Fprintf(&sb, ", up %s", v.Up)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
