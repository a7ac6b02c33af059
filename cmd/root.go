/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for webpackres.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/webpackres/cmd/inspect"
	"bennypowers.dev/webpackres/cmd/mcp"
	"bennypowers.dev/webpackres/cmd/resolve"
	"bennypowers.dev/webpackres/cmd/version"
	"bennypowers.dev/webpackres/cmd/which"
	"bennypowers.dev/webpackres/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "webpackres",
	Short: "Resolve import specifiers the way a webpack build would",
	Long: `webpackres resolves import and require specifiers against the webpack
configuration of the package that contains the importing file, honoring
resolve.alias, externals, resolve.extensions, resolve.modulesDirectories and
resolve.root.

The configuration is read from webpack.config.yaml, webpack.config.yml or
webpack.config.json next to the nearest package.json.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetDebug(viper.GetBool("verbose"))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log resolution decisions to stderr")
	rootCmd.PersistentFlags().StringP("format", "f", "text", "Output format (text, json)")
	rootCmd.PersistentFlags().String("storage", "", "Read files from a storage URL such as s3://bucket/checkout (resolve, which, inspect, mcp)")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("storage", rootCmd.PersistentFlags().Lookup("storage"))
	viper.SetEnvPrefix("WEBPACKRES")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(which.Cmd)
	rootCmd.AddCommand(inspect.Cmd)
	rootCmd.AddCommand(mcp.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
