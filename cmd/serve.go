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
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gasdyn/server"
)

// ServeCmd runs the JSON API
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the relations over HTTP",
	Long: `
Serves the relations as JSON over HTTP, with prometheus metrics on /metrics:
  /isentropic?mach=          /area-mach?ratio=
  /prandtl-meyer?mach=|nu=   /shock?mach=&beta=|theta=&branch=
  /normal-shock?mach=        /max-deflection?mach=
  /expansion?mach=&theta=
Every endpoint takes gamma= and deg=true|false.

gasdyn serve --addr :8087 --degrees`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			s *server.Server
		)
		if s, err = server.NewServer(server.Config{
			Gamma:   viper.GetFloat64("gamma"),
			Degrees: viper.GetBool("degrees"),
		}); err != nil {
			return
		}
		return s.ListenAndServe(viper.GetString("addr"))
	},
}

func init() {
	rootCmd.AddCommand(ServeCmd)
	ServeCmd.Flags().StringP("addr", "a", ":8087", "listen address")
	if err := viper.BindPFlag("addr", ServeCmd.Flags().Lookup("addr")); err != nil {
		panic(err)
	}
}
