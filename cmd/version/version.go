/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides the version command for webpackres.
package version

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/webpackres/internal/version"
)

// Cmd is the version cobra command that prints version and build information.
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for webpackres.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return write(cmd.OutOrStdout(), viper.GetString("format"))
	},
}

func write(w io.Writer, format string) error {
	switch format {
	case "json":
		out, err := json.MarshalIndent(version.Info(), "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling version info: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	default:
		_, err := fmt.Fprintf(w, "webpackres %s\n", version.Get())
		return err
	}
}
