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
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gocryst/InputParameters"
	"github.com/notargets/gocryst/lattice"
	"github.com/notargets/gocryst/utils"
	"github.com/notargets/gocryst/view"
)

// ViewCmd represents the view command
var ViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Solve the camera rotation that looks along a lattice direction",
	Long: `Solve the camera rotation that looks along a lattice direction

Directions are written [u v w] for the direct lattice and (h k l) for plane
normals. Without --up the up hint is (0 0 1) in the other basis.

gocryst view --cell 5,5,5,90,90,90 --along "[1 1 1]" --up "[0 0 1]"
gocryst view --inputFile views.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			w       = cmd.OutOrStdout()
			homog   bool
			err     error
			ip      *InputParameters.InputParameters
			icFile  string
			along   string
			up      string
			session *lattice.Session
		)
		if icFile, err = cmd.Flags().GetString("inputFile"); err != nil {
			return err
		}
		along, _ = cmd.Flags().GetString("along")
		up, _ = cmd.Flags().GetString("up")
		homog, _ = cmd.Flags().GetBool("homogeneous")
		maxInt, tol := viper.GetInt("maxInt"), viper.GetFloat64("tolerance")
		if len(icFile) != 0 {
			if ip, err = readInput(icFile); err != nil {
				return err
			}
			if viper.GetBool("verbose") {
				fmt.Fprint(w, ip.String())
			}
			var p lattice.Parameters
			if p, err = ip.LatticeParameters(); err != nil {
				return err
			}
			session = lattice.NewSession()
			if _, err = session.SetParameters(p); err != nil {
				return err
			}
			if ip.MaxInt > 0 {
				maxInt = ip.MaxInt
			}
			if ip.Tolerance > 0 {
				tol = ip.Tolerance
			}
		} else {
			if len(along) == 0 {
				return fmt.Errorf("must supply a direction (-a, --along) or an input file (-I, --inputFile)")
			}
			if session, err = sessionFromConfig(); err != nil {
				return err
			}
			ip = &InputParameters.InputParameters{
				Views: []InputParameters.ViewSpec{{Name: along, Along: along, Up: up}},
			}
		}
		uc, err := session.Cell()
		if err != nil {
			return err
		}
		for _, vs := range ip.Views {
			req, err := vs.Request(tol)
			if err != nil {
				return fmt.Errorf("view %s: %w", vs.Name, err)
			}
			if err = runView(w, &uc, vs.Name, req, maxInt, homog, viper.GetBool("verbose")); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ViewCmd)
	ViewCmd.Flags().StringP("along", "a", "", "projection direction, e.g. \"[1 1 0]\" or \"(1 1 1)\"")
	ViewCmd.Flags().StringP("up", "u", "", "up direction, same notation as --along")
	ViewCmd.Flags().StringP("inputFile", "I", "", "YAML file with a Cell and a list of Views")
	ViewCmd.Flags().Bool("homogeneous", false, "print the rotation as a 4x4 homogeneous matrix")
}

func readInput(fileName string) (ip *InputParameters.InputParameters, err error) {
	var data []byte
	if data, err = os.ReadFile(fileName); err != nil {
		return
	}
	ip = &InputParameters.InputParameters{}
	if err = ip.Parse(data); err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	if err = ip.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return
}

func runView(w io.Writer, uc *lattice.UnitCell, name string, req view.Request,
	maxInt int, homog, verbose bool) (err error) {
	var (
		sol      view.Solution
		proj, up view.Reading
	)
	if sol, err = view.Solve(uc, req); err != nil {
		return
	}
	fmt.Fprintf(w, "View %s: %s\n", name, req)
	if verbose {
		fmt.Fprintf(w, "up hint (cartesian) = %8.5f, substituted = %t, orthogonalized = %t\n",
			sol.UpHint, sol.Substituted, sol.Corrected)
	}
	if homog {
		fmt.Fprintf(w, "%8.5f\n", mat.Formatted(utils.ToDense4(sol.Mat4()), mat.Squeeze()))
	} else {
		fmt.Fprintf(w, "%8.5f\n", mat.Formatted(utils.ToDense(sol.Mat3()), mat.Squeeze()))
	}
	if proj, up, err = view.ReadViewVectors(uc, sol.Frame, req.Basis.Or(lattice.Direct), maxInt); err != nil {
		return
	}
	fmt.Fprintf(w, "projection = %s, up = %s\n", proj, up)
	return
}
