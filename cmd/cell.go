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

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gocryst/lattice"
	"github.com/notargets/gocryst/utils"
)

// CellCmd represents the cell command
var CellCmd = &cobra.Command{
	Use:   "cell",
	Short: "Print the direct and reciprocal basis matrices of a unit cell",
	Long: `Print the direct and reciprocal basis matrices of a unit cell

gocryst cell --cell 5.1,7.3,9.8,90,104.5,90`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := sessionFromConfig()
		if err != nil {
			return err
		}
		uc, err := s.Cell()
		if err != nil {
			return err
		}
		printCell(cmd.OutOrStdout(), &uc)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(CellCmd)
}

func printCell(w io.Writer, uc *lattice.UnitCell) {
	fmt.Fprintf(w, "%s\n", uc.Parameters)
	fmt.Fprintf(w, "%12.5f\t= Volume\n", uc.Volume)
	printMatrix(w, "Direct [a b c]", uc.Direct)
	printMatrix(w, "Reciprocal [a* b* c*]", uc.Reciprocal)
}

func printMatrix(w io.Writer, title string, M mgl64.Mat3) {
	fmt.Fprintf(w, "%s =\n%8.5f\n", title, mat.Formatted(utils.ToDense(M), mat.Squeeze()))
}
