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
	"errors"
	"fmt"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gocryst/view"
)

// MillerCmd represents the miller command
var MillerCmd = &cobra.Command{
	Use:   "miller x y z",
	Short: "Reduce a floating point direction to small integer indices",
	Long: `Reduce a floating point direction to small integer indices

gocryst miller -- -0.0731261447 0 0.0548446104`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			v mgl64.Vec3
			m view.Miller
		)
		for i, a := range args {
			if v[i], err = strconv.ParseFloat(a, 64); err != nil {
				return fmt.Errorf("component %d: %w", i, err)
			}
		}
		maxInt := viper.GetInt("maxInt")
		m, err = view.ReduceToIntegers(v, maxInt)
		switch {
		case errors.Is(err, view.ErrNoIntegerRepresentation):
			fmt.Fprintf(cmd.OutOrStdout(), "%8.5f (no integer form with multiplier <= %d)\n", v, maxInt)
			return nil
		case err != nil:
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", m)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(MillerCmd)
}
