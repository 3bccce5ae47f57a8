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

// AxesCmd represents the axes command
var AxesCmd = &cobra.Command{
	Use:   "axes",
	Short: "List the lattice axes as seen along a view direction",
	Long: `List the lattice axes as seen along a view direction

Screen coordinates are x right, y up and z toward the viewer.

gocryst axes --cell 4.913,4.913,5.405,90,90,120 --along "[0 0 1]" --reciprocal`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			w     = cmd.OutOrStdout()
			frame = view.FrameFromMat3(mgl64.Ident3())
			basis = lattice.Direct
			axes  [3]view.Axis
		)
		along, _ := cmd.Flags().GetString("along")
		up, _ := cmd.Flags().GetString("up")
		if recip, _ := cmd.Flags().GetBool("reciprocal"); recip {
			basis = lattice.Reciprocal
		}
		s, err := sessionFromConfig()
		if err != nil {
			return err
		}
		uc, err := s.Cell()
		if err != nil {
			return err
		}
		if len(along) != 0 {
			req, err := view.NewRequest(along, up, viper.GetFloat64("tolerance"))
			if err != nil {
				return err
			}
			sol, err := view.Solve(&uc, req)
			if err != nil {
				return err
			}
			frame = sol.Frame
		}
		if axes, err = view.Axes(&uc, frame, basis); err != nil {
			return err
		}
		fmt.Fprintf(w, "%-4s %10s %10s %10s %10s\n", "axis", "length", "x", "y", "z")
		for _, ax := range axes {
			fmt.Fprintf(w, "%-4s %10.5f %10.5f %10.5f %10.5f\n",
				ax.Label, ax.Length, ax.Screen[0], ax.Screen[1], ax.Screen[2])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(AxesCmd)
	AxesCmd.Flags().StringP("along", "a", "", "view direction, default is the cartesian frame of the cell")
	AxesCmd.Flags().StringP("up", "u", "", "up direction")
	AxesCmd.Flags().BoolP("reciprocal", "r", false, "list a*, b*, c* instead of a, b, c")
}
