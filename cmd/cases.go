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
	"io/ioutil"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gasdyn/InputParameters"
	"github.com/notargets/gasdyn/isentropic"
	"github.com/notargets/gasdyn/nozzle"
	"github.com/notargets/gasdyn/shocktube"
)

const exampleNozzleFile = `
########################################
Title: "Converging diverging nozzle"
Gamma: 1.4
Nozzle:
  X: [0, 0.3, 0.65, 1]
  A: [1.18, 1, 1.245, 1.98]
  P0: 101325
  T0: 300
  BackPressures: [96000, 81000, 9700]
########################################
`

const exampleShockTubeFile = `
########################################
Title: "Sod"
ShockTube:
  Left: {Rho: 1, P: 1}
  Right: {Rho: 0.125, P: 0.1}
  Time: 0.2
  Points: 101
########################################
`

// NozzleCmd solves a tabulated nozzle for each back pressure of a case file
var NozzleCmd = &cobra.Command{
	Use:   "nozzle",
	Short: "Quasi one dimensional converging-diverging nozzle flow",
	Long: `
Classifies the nozzle flow regime for every back pressure in the case file and
prints the Mach number, pressure and temperature at each station.

gasdyn nozzle -I nozzle.yaml`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip *InputParameters.InputParameters
		)
		if ip, err = processInput(cmd, exampleNozzleFile); err != nil {
			return
		}
		if ip.Nozzle == nil {
			return fmt.Errorf("case %q has no Nozzle section", ip.Title)
		}
		return RunNozzle(cmd.OutOrStdout(), ip)
	},
}

// ShockTubeCmd samples the exact shock tube solution
var ShockTubeCmd = &cobra.Command{
	Use:   "shocktube",
	Short: "Exact shock tube (Riemann problem) solution",
	Long: `
Samples density, pressure, velocity and internal energy of the exact shock tube
solution. Without a case file the Sod problem is solved at --time.

gasdyn shocktube --time 0.2
gasdyn shocktube -I sod.yaml`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip *InputParameters.InputParameters
		)
		if file, _ := cmd.Flags().GetString("inputConditionsFile"); file == "" {
			t, _ := cmd.Flags().GetFloat64("time")
			X, Rho, P, U, E, err := shocktube.Sod(t)
			if err != nil {
				return err
			}
			printProfile(cmd.OutOrStdout(), X, Rho, P, U, E)
			return nil
		}
		if ip, err = processInput(cmd, exampleShockTubeFile); err != nil {
			return
		}
		if ip.ShockTube == nil {
			return fmt.Errorf("case %q has no ShockTube section", ip.Title)
		}
		return RunShockTube(cmd.OutOrStdout(), ip)
	},
}

func init() {
	rootCmd.AddCommand(NozzleCmd)
	rootCmd.AddCommand(ShockTubeCmd)
	NozzleCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML case file with a Nozzle section")
	ShockTubeCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML case file with a ShockTube section")
	ShockTubeCmd.Flags().Float64P("time", "t", 0.2, "sample time for the Sod problem")
}

func processInput(cmd *cobra.Command, example string) (ip *InputParameters.InputParameters, err error) {
	var (
		data []byte
	)
	file, _ := cmd.Flags().GetString("inputConditionsFile")
	if len(file) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Example File:%s\n", example)
		return nil, fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile)")
	}
	if data, err = ioutil.ReadFile(file); err != nil {
		return
	}
	ip = &InputParameters.InputParameters{}
	if viper.IsSet("gamma") {
		ip.Gamma = viper.GetFloat64("gamma")
	}
	if err = ip.Parse(data); err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}
	if log.IsLevelEnabled(log.DebugLevel) {
		ip.Print()
	}
	return
}

func RunNozzle(out io.Writer, ip *InputParameters.InputParameters) (err error) {
	var (
		nz  *nozzle.Nozzle
		fl  isentropic.Flow
		sol *nozzle.Solution
		np  = ip.Nozzle
	)
	if fl, err = isentropic.NewFlow(ip.Gamma); err != nil {
		return
	}
	if nz, err = nozzle.NewNozzle(np.X, np.A); err != nil {
		return
	}
	pe1, pe2, pe3, err := nz.CriticalPressureRatios(fl)
	if err != nil {
		return
	}
	fmt.Fprintf(out, "%s: throat at x = %g, Ae/At = %.6g\n", ip.Title, np.X[nz.IThroat], nz.ExitAreaRatio())
	fmt.Fprintf(out, "critical pB/p0: choked %.6g, shock at exit %.6g, design %.6g\n", pe1, pe3, pe2)
	for _, pB := range np.BackPressures {
		if sol, err = nz.SolveFlow(fl, np.P0, np.T0, pB); err != nil {
			return fmt.Errorf("back pressure %g: %w", pB, err)
		}
		log.WithFields(log.Fields{"pB": pB, "regime": sol.Regime}).Debug("nozzle solved")
		fmt.Fprintf(out, "\npB = %g, pB/p0 = %.6g, regime %s", pB, pB/np.P0, sol.Regime)
		if sol.ShockIndex >= 0 {
			fmt.Fprintf(out, ", normal shock at x = %.6g (M = %.6g)", sol.ShockX, sol.ShockMach)
		}
		fmt.Fprintf(out, "\n%12s %12s %12s %12s %12s\n", "x", "A", "M", "p", "T")
		for i := range np.X {
			fmt.Fprintf(out, "%12.6g %12.6g %12.6g %12.6g %12.6g\n", np.X[i], np.A[i], sol.M[i], sol.P[i], sol.T[i])
		}
	}
	return
}

func RunShockTube(out io.Writer, ip *InputParameters.InputParameters) (err error) {
	var (
		rp *shocktube.Riemann
		st = ip.ShockTube
		X  = floats.Span(make([]float64, st.Points), st.XMin, st.XMax)
	)
	rp, err = shocktube.NewRiemann(
		shocktube.State{Rho: st.Left.Rho, P: st.Left.P, U: st.Left.U},
		shocktube.State{Rho: st.Right.Rho, P: st.Right.P, U: st.Right.U},
		ip.Gamma)
	if err != nil {
		return
	}
	x1, x2, x3, x4 := rp.Positions(st.X0, st.Time)
	fmt.Fprintf(out, "%s: p* = %.6g, u* = %.6g, shock Mach %.6g\n", ip.Title, rp.PStar, rp.UStar, rp.ShockMach)
	fmt.Fprintf(out, "fan head %.6g, fan tail %.6g, contact %.6g, shock %.6g\n", x1, x2, x3, x4)
	Rho, P, U, E, err := rp.Sample(st.X0, st.Time, X)
	if err != nil {
		return
	}
	printProfile(out, X, Rho, P, U, E)
	return
}

func printProfile(out io.Writer, X, Rho, P, U, E []float64) {
	fmt.Fprintf(out, "%12s %12s %12s %12s %12s\n", "x", "rho", "p", "u", "e")
	for i := range X {
		fmt.Fprintf(out, "%12.6g %12.6g %12.6g %12.6g %12.6g\n", X[i], Rho[i], P[i], U[i], E[i])
	}
}
