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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gasdyn/isentropic"
)

// ExpansionCmd turns a supersonic stream through a Prandtl-Meyer fan
var ExpansionCmd = &cobra.Command{
	Use:   "expansion",
	Short: "Prandtl-Meyer expansion fan",
	Long: `
Turns a supersonic stream at --mach away from itself by --theta through a centred
expansion fan.

gasdyn expansion --mach 2 --theta 10 --degrees`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ex       isentropic.Expansion
			thetaMax float64
			gamma    = viper.GetFloat64("gamma")
			out      = cmd.OutOrStdout()
			u        = angleUnit()
		)
		M1, _ := cmd.Flags().GetFloat64("mach")
		theta, _ := cmd.Flags().GetFloat64("theta")
		if ex, err = isentropic.NewExpansion(M1, angleIn(theta), gamma); err != nil {
			return fmt.Errorf("expansion at M1 = %g: %w", M1, err)
		}
		if thetaMax, err = isentropic.MaxTurning(M1, gamma); err != nil {
			return
		}
		fmt.Fprintf(out, "%12.6g\t= M1\n", ex.M1)
		fmt.Fprintf(out, "%12.6g\t= theta [%s]\n", angleOut(ex.Theta), u)
		fmt.Fprintf(out, "%12.6g\t= theta max [%s]\n", angleOut(thetaMax), u)
		fmt.Fprintf(out, "%12.6g\t= nu1 [%s]\n", angleOut(ex.Nu1), u)
		fmt.Fprintf(out, "%12.6g\t= nu2 [%s]\n", angleOut(ex.Nu2), u)
		fmt.Fprintf(out, "%12.6g\t= M2\n", ex.M2)
		fmt.Fprintf(out, "%12.6g\t= mu1 [%s]\n", angleOut(ex.Mu1), u)
		fmt.Fprintf(out, "%12.6g\t= mu2 [%s]\n", angleOut(ex.Mu2), u)
		fmt.Fprintf(out, "%12.6g\t= fan angle [%s]\n", angleOut(ex.FanAngle()), u)
		fmt.Fprintf(out, "%12.6g\t= p2/p1\n", ex.P2P1)
		fmt.Fprintf(out, "%12.6g\t= T2/T1\n", ex.T2T1)
		fmt.Fprintf(out, "%12.6g\t= rho2/rho1\n", ex.Rho2Rho1)
		return
	},
}

func init() {
	rootCmd.AddCommand(ExpansionCmd)
	ExpansionCmd.Flags().Float64P("mach", "M", 2, "upstream Mach number")
	ExpansionCmd.Flags().Float64P("theta", "t", 0, "turning angle")
}
