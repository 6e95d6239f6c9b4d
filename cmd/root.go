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

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gasdyn/types"
	"github.com/notargets/gasdyn/utils"
)

var (
	cfgFile  string
	profiler interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gasdyn",
	Short: "Compressible flow relations for a calorically perfect gas",
	Long: `
Isentropic flow, Prandtl-Meyer expansions, oblique and normal shocks, quasi one
dimensional nozzle flow and the shock tube, evaluated from the command line or
served over HTTP.

gasdyn shock --mach 3 --theta 20 --degrees`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		var level log.Level
		if level, err = log.ParseLevel(viper.GetString("log-level")); err != nil {
			return
		}
		log.SetLevel(level)
		if err = types.CheckGamma(viper.GetFloat64("gamma")); err != nil {
			return fmt.Errorf("--gamma: %w", err)
		}
		switch p := viper.GetString("profile"); p {
		case "":
		case "cpu":
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
		case "mem":
			profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet)
		default:
			return fmt.Errorf("unknown --profile %q, expected cpu or mem", p)
		}
		return
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
		log.Error(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gasdyn.yaml)")
	rootCmd.PersistentFlags().Float64("gamma", types.DefaultGamma, "ratio of specific heats, must exceed 1")
	rootCmd.PersistentFlags().String("log-level", "info", "logrus level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("degrees", false, "angles are read and printed in degrees instead of radians")
	rootCmd.PersistentFlags().String("profile", "", "write a pprof profile of the command: cpu or mem")
	for _, name := range []string{"gamma", "log-level", "degrees", "profile"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
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
			log.Error(err)
			os.Exit(1)
		}
		// Search config in home directory with name ".gasdyn" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".gasdyn")
	}
	viper.SetEnvPrefix("GASDYN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.WithField("file", viper.ConfigFileUsed()).Debug("using config file")
	}
}

// angleIn converts an angle flag to radians
func angleIn(deg float64) float64 {
	if viper.GetBool("degrees") {
		return utils.Deg2Rad(deg)
	}
	return deg
}

// angleOut converts radians to the unit angles are printed in
func angleOut(rad float64) float64 {
	if viper.GetBool("degrees") {
		return utils.Rad2Deg(rad)
	}
	return rad
}

func angleUnit() string {
	if viper.GetBool("degrees") {
		return "deg"
	}
	return "rad"
}
