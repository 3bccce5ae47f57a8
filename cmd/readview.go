/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gocryst/lattice"
	"github.com/notargets/gocryst/view"
)

// ReadViewCmd represents the readview command
var ReadViewCmd = &cobra.Command{
	Use:   "readview",
	Short: "Report the lattice direction a camera rotation looks along",
	Long: `Report the lattice direction a camera rotation looks along

The rotation is given row major as 9 (3x3) or 16 (4x4) values.

gocryst readview --cell 5,5,5,90,90,90 --matrix 1,0,0,0,1,0,0,0,1 --basis reciprocal`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			w        = cmd.OutOrStdout()
			vals     []float64
			basis    lattice.Basis
			frame    view.Frame
			proj, up view.Reading
			err      error
		)
		text, _ := cmd.Flags().GetString("matrix")
		if vals, err = parseFloatList(text); err != nil {
			return err
		}
		label, _ := cmd.Flags().GetString("basis")
		if basis, err = lattice.ParseBasis(label); err != nil {
			return err
		}
		if frame, err = frameFromValues(vals); err != nil {
			return err
		}
		s, err := sessionFromConfig()
		if err != nil {
			return err
		}
		uc, err := s.Cell()
		if err != nil {
			return err
		}
		basis = basis.Or(lattice.Direct)
		if proj, up, err = view.ReadViewVectors(&uc, frame, basis, viper.GetInt("maxInt")); err != nil {
			return err
		}
		fmt.Fprintf(w, "projection = %s\nup         = %s\n", proj, up)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ReadViewCmd)
	ReadViewCmd.Flags().String("matrix", "", "rotation matrix, row major, 9 or 16 values")
	ReadViewCmd.Flags().StringP("basis", "b", "direct", "basis to report in: direct, reciprocal or cartesian")
}

func frameFromValues(vals []float64) (f view.Frame, err error) {
	switch len(vals) {
	case 9:
		var M mgl64.Mat3
		for i, v := range vals {
			M.Set(i/3, i%3, v)
		}
		f = view.FrameFromMat3(M)
	case 16:
		var M mgl64.Mat4
		for i, v := range vals {
			M.Set(i/4, i%4, v)
		}
		f = view.FrameFromMat4(M)
	default:
		return f, fmt.Errorf("must supply 9 or 16 matrix values (--matrix), have %d", len(vals))
	}
	if !f.IsOrthonormal(1.e-6) {
		return f, fmt.Errorf("matrix is not a rotation:\n%s", f)
	}
	return
}
