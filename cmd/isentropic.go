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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gasdyn/isentropic"
)

// IsentropicCmd tabulates the isentropic ratios over a Mach number sweep, or inverts one ratio
var IsentropicCmd = &cobra.Command{
	Use:   "isentropic",
	Short: "Isentropic flow ratios",
	Long: `
Tabulates T/T0, p/p0, rho/rho0, A/A* and a/a0 for a sweep of Mach numbers, with the
Mach angle and Prandtl-Meyer angle for supersonic entries. With --ratio the named
ratio is inverted for the Mach number instead.

gasdyn isentropic --mach 0.5 --machMax 3 --n 6
gasdyn isentropic --ratio A_Astar --value 2`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			fl    isentropic.Flow
			out   = cmd.OutOrStdout()
			gamma = viper.GetFloat64("gamma")
		)
		if fl, err = isentropic.NewFlow(gamma); err != nil {
			return
		}
		if cmd.Flags().Changed("ratio") {
			label, _ := cmd.Flags().GetString("ratio")
			value, _ := cmd.Flags().GetFloat64("value")
			return invertRatio(out, fl, label, value)
		}
		M, _ := cmd.Flags().GetFloat64("mach")
		MMax, _ := cmd.Flags().GetFloat64("machMax")
		n, _ := cmd.Flags().GetInt("n")
		return isentropicTable(out, fl, sweep(M, MMax, n))
	},
}

func init() {
	rootCmd.AddCommand(IsentropicCmd)
	IsentropicCmd.Flags().Float64P("mach", "M", 2, "Mach number, or the start of the sweep")
	IsentropicCmd.Flags().Float64("machMax", 0, "end of the Mach number sweep, no sweep when not above --mach")
	IsentropicCmd.Flags().IntP("n", "n", 11, "number of Mach numbers in the sweep")
	IsentropicCmd.Flags().StringP("ratio", "r", "", "ratio to invert: T_T0, p_p0, rho_rho0, A_Astar or a_a0")
	IsentropicCmd.Flags().Float64P("value", "v", 0.5, "value of the ratio to invert")
}

// sweep spans [lo, hi] with n points, or returns lo alone when there is no range
func sweep(lo, hi float64, n int) []float64 {
	if !(hi > lo) || n < 2 {
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

func isentropicTable(out io.Writer, fl isentropic.Flow, M []float64) (err error) {
	var (
		ratios = []isentropic.Ratio{isentropic.Temperature, isentropic.Pressure,
			isentropic.Density, isentropic.Area, isentropic.SoundSpeed}
		cols = make([][]float64, len(ratios))
	)
	for i, r := range ratios {
		if cols[i], err = fl.Eval(r, M); err != nil {
			return fmt.Errorf("evaluating %s: %w", r, err)
		}
	}
	fmt.Fprintf(out, "%10s", "M")
	for _, r := range ratios {
		fmt.Fprintf(out, " %12s", r)
	}
	fmt.Fprintf(out, " %12s %12s\n", "mu["+angleUnit()+"]", "nu["+angleUnit()+"]")
	for j, m := range M {
		fmt.Fprintf(out, "%10.5f", m)
		for i := range ratios {
			fmt.Fprintf(out, " %12.6g", cols[i][j])
		}
		if m >= 1 {
			mu, _ := isentropic.MachAngle(m)
			nu, _ := isentropic.PrandtlMeyer(m, fl.Gamma)
			fmt.Fprintf(out, " %12.6g %12.6g", angleOut(mu), angleOut(nu))
		}
		fmt.Fprintln(out)
	}
	return
}

func invertRatio(out io.Writer, fl isentropic.Flow, label string, value float64) (err error) {
	var (
		r          isentropic.Ratio
		Msub, Msup float64
	)
	if r, err = isentropic.ParseRatio(label); err != nil {
		return
	}
	if Msub, Msup, err = fl.MachFromRatio(r, value); err != nil {
		return fmt.Errorf("inverting %s = %g: %w", r, value, err)
	}
	if r == isentropic.Area {
		fmt.Fprintf(out, "%s = %g\nM subsonic   = %.8g\nM supersonic = %.8g\n", r, value, Msub, Msup)
		return
	}
	fmt.Fprintf(out, "%s = %g\nM = %.8g\n", r, value, Msub)
	return
}
