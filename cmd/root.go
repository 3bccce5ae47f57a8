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
	"os"
	"strings"
	"unicode"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gocryst/lattice"
	"github.com/notargets/gocryst/view"
)

var (
	cfgFile  string
	profiler interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gocryst",
	Short: "Crystallographic view directions and axes",
	Long: `
Aligns a camera along crystallographic directions [uvw] or plane normals (hkl)
of a unit cell, reads back the indices of an applied view and reports the
lattice axes as seen from it.

gocryst view --cell 4.913,4.913,5.405,90,90,120 --along "[0 0 1]"`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch mode := viper.GetString("profile"); mode {
		case "":
		case "cpu":
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
		case "mem":
			profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet)
		default:
			return fmt.Errorf("unknown profile mode %q, use cpu or mem", mode)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
			profiler = nil
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gocryst.yaml)")
	pf.StringP("cell", "c", "", "unit cell: a,b,c,alpha,beta,gamma (Angstrom, degrees)")
	pf.IntP("maxInt", "m", view.DefaultMaxInt, "largest multiplier tried when reducing to integer indices")
	pf.Float64P("tolerance", "t", view.DefaultTolerance, "|cos| between projection and up above which up is orthogonalized")
	pf.BoolP("verbose", "v", false, "print intermediate cartesian vectors")
	pf.String("profile", "", "write a cpu or mem profile to the working directory")
	for _, key := range []string{"cell", "maxInt", "tolerance", "verbose", "profile"} {
		if err := viper.BindPFlag(key, pf.Lookup(key)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".gocryst" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".gocryst")
	}

	viper.SetEnvPrefix("GOCRYST")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil && viper.GetBool("verbose") {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// sessionFromConfig loads the cell from --cell, GOCRYST_CELL or the config file
func sessionFromConfig() (s *lattice.Session, err error) {
	var (
		vals []float64
		p    lattice.Parameters
	)
	if vals, err = cellValues(viper.Get("cell")); err != nil {
		return
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("must supply a unit cell (-c, --cell a,b,c,alpha,beta,gamma)")
	}
	if p, err = lattice.NewParameters(vals); err != nil {
		return
	}
	s = lattice.NewSession()
	if _, err = s.SetParameters(p); err != nil {
		return nil, err
	}
	return
}

// cellValues accepts the forms the cell arrives in: a flag or environment
// string "a,b,c,..." or a config file list
func cellValues(raw interface{}) (vals []float64, err error) {
	var items []interface{}
	switch r := raw.(type) {
	case nil:
		return
	case []float64:
		return r, nil
	case string:
		return parseFloatList(r)
	case []string:
		for _, f := range r {
			items = append(items, f)
		}
	default:
		if items, err = cast.ToSliceE(raw); err != nil {
			return nil, fmt.Errorf("cell: %w", err)
		}
	}
	vals = make([]float64, len(items))
	for i, it := range items {
		if vals[i], err = cast.ToFloat64E(it); err != nil {
			return nil, fmt.Errorf("cell value %d: %w", i, err)
		}
	}
	return
}

// parseFloatList reads "1,2,3", "1 2 3" or "[1, 2, 3]"
func parseFloatList(text string) (vals []float64, err error) {
	fields := strings.FieldsFunc(strings.Trim(strings.TrimSpace(text), "[]"), func(c rune) bool {
		return c == ',' || unicode.IsSpace(c)
	})
	vals = make([]float64, len(fields))
	for i, f := range fields {
		if vals[i], err = cast.ToFloat64E(f); err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
	}
	return
}
