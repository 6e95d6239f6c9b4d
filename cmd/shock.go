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
	"math"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gasdyn/shocks"
	"github.com/notargets/gasdyn/types"
)

// ShockCmd solves an oblique or normal shock
var ShockCmd = &cobra.Command{
	Use:   "shock",
	Short: "Oblique and normal shock relations",
	Long: `
Builds the shock for upstream Mach number --mach from one of:
  --beta      the wave angle
  --theta     the flow deflection, on the --branch weak (default) or strong solution
  --p2p1      the static pressure ratio of a normal shock
  --m2        the downstream Mach number of a normal shock
With none of them the normal shock at --mach is returned.

gasdyn shock --mach 3 --theta 20 --branch strong --degrees`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			s     shocks.Shock
			gamma = viper.GetFloat64("gamma")
			fl    = cmd.Flags()
		)
		M1, _ := fl.GetFloat64("mach")
		switch {
		case fl.Changed("beta"):
			beta, _ := fl.GetFloat64("beta")
			s, err = shocks.NewShock(M1, angleIn(beta), gamma)
		case fl.Changed("theta"):
			var branch types.Branch
			theta, _ := fl.GetFloat64("theta")
			label, _ := fl.GetString("branch")
			if branch, err = types.ParseBranch(label); err != nil {
				return
			}
			s, err = shocks.FromDeflectionAngle(M1, angleIn(theta), branch, gamma)
		case fl.Changed("p2p1"):
			p2p1, _ := fl.GetFloat64("p2p1")
			s, err = shocks.NormalShockFromPressureRatio(p2p1, gamma)
		case fl.Changed("m2"):
			M2, _ := fl.GetFloat64("m2")
			s, err = shocks.NormalShockFromDownstreamMach(M2, gamma)
		default:
			s, err = shocks.NewNormalShock(M1, gamma)
		}
		if err != nil {
			return fmt.Errorf("shock at M1 = %g: %w", M1, err)
		}
		log.WithFields(log.Fields{"M1": s.M1, "beta": s.Beta, "kind": s.Kind}).Debug("shock solved")
		return printShock(cmd.OutOrStdout(), s)
	},
}

func init() {
	rootCmd.AddCommand(ShockCmd)
	ShockCmd.Flags().Float64P("mach", "M", 2, "upstream Mach number")
	ShockCmd.Flags().Float64P("beta", "b", math.Pi/2, "shock wave angle")
	ShockCmd.Flags().Float64P("theta", "t", 0, "flow deflection angle")
	ShockCmd.Flags().StringP("branch", "B", "weak", "solution branch for --theta: weak or strong")
	ShockCmd.Flags().Float64("p2p1", 1, "normal shock static pressure ratio")
	ShockCmd.Flags().Float64("m2", 1, "normal shock downstream Mach number")
}

func printShock(out io.Writer, s shocks.Shock) (err error) {
	fmt.Fprintf(out, "%s shock, gamma = %g\n", s.Kind, s.Gamma)
	fmt.Fprintf(out, "%12.6g\t= M1\n", s.M1)
	fmt.Fprintf(out, "%12.6g\t= beta [%s]\n", angleOut(s.Beta), angleUnit())
	fmt.Fprintf(out, "%12.6g\t= theta [%s]\n", angleOut(s.Theta), angleUnit())
	fmt.Fprintf(out, "%12.6g\t= M1n\n", s.M1n)
	fmt.Fprintf(out, "%12.6g\t= M2n\n", s.M2n)
	fmt.Fprintf(out, "%12.6g\t= M2\n", s.M2)
	fmt.Fprintf(out, "%12.6g\t= p2/p1\n", s.P2P1)
	fmt.Fprintf(out, "%12.6g\t= rho2/rho1\n", s.Rho2Rho1)
	fmt.Fprintf(out, "%12.6g\t= T2/T1\n", s.T2T1)
	fmt.Fprintf(out, "%12.6g\t= p02/p01\n", s.P02P01)
	fmt.Fprintf(out, "%12.6g\t= rho02/rho01\n", s.Rho02Rho01)
	fmt.Fprintf(out, "%12.6g\t= T02/T01\n", s.T02T01)
	if s.Kind == types.Oblique {
		var thetaMax, betaMax float64
		if thetaMax, betaMax, err = shocks.MaxDeflection(s.M1, s.Gamma); err != nil {
			return
		}
		fmt.Fprintf(out, "%12.6g\t= theta max [%s]\n", angleOut(thetaMax), angleUnit())
		fmt.Fprintf(out, "%12.6g\t= beta at theta max [%s]\n", angleOut(betaMax), angleUnit())
	}
	return
}
