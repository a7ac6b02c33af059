/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package inspect provides the inspect command for webpackres.
package inspect

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/webpackres/config"
	"bennypowers.dev/webpackres/fs"
	"bennypowers.dev/webpackres/internal/report"
	"bennypowers.dev/webpackres/pkgroot"
	"bennypowers.dev/webpackres/resolver"
	"bennypowers.dev/webpackres/validator"
)

// Cmd is the inspect cobra command.
var Cmd = &cobra.Command{
	Use:   "inspect <importing-file>",
	Short: "Show the build config and search options that apply to a file",
	Long: `Show the package root, build config file, aliases, externals and
filesystem search options used when resolving specifiers imported from a file.
Settings that load but probably resolve differently than intended are listed
as warnings.

Examples:
  webpackres inspect src/app.js
  webpackres inspect src/app.js --format json`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

// Inspection describes how requests from one importing file are resolved.
type Inspection struct {
	File              string            `json:"file"`
	PackageRoot       string            `json:"packageRoot,omitempty"`
	ConfigFile        string            `json:"configFile,omitempty"`
	ConfigError       string            `json:"configError,omitempty"`
	Alias             map[string]string `json:"alias,omitempty"`
	Externals         config.Externals  `json:"externals"`
	BaseDirectories   []string          `json:"baseDirectories"`
	Extensions        []string          `json:"extensions"`
	ModuleDirectories []string          `json:"moduleDirectories"`
	Warnings          []string          `json:"warnings,omitempty"`
}

func run(cmd *cobra.Command, args []string) error {
	file, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", args[0], err)
	}
	return write(cmd.OutOrStdout(), viper.GetString("format"), Inspect(fs.Open(viper.GetString("storage")), file))
}

// Inspect gathers the resolution settings for file, along with warnings
// about suspicious config settings. Config load failures are recorded
// rather than returned, since resolution falls back to the empty config.
func Inspect(filesystem fs.FileSystem, file string) Inspection {
	in := Inspection{File: file}

	var cfg *config.BuildConfig
	if root, err := pkgroot.Find(filesystem, file); err == nil {
		in.PackageRoot = root
		in.ConfigFile = config.Find(filesystem, root)
		cfg, err = config.Load(filesystem, root)
		if err != nil {
			in.ConfigError = err.Error()
			cfg = nil
		}
		for _, w := range validator.Validate(cfg, in.ConfigFile) {
			in.Warnings = append(in.Warnings, w.Error())
		}
	}
	if cfg == nil {
		cfg = config.Empty()
	}

	in.Alias = cfg.Resolve.Alias
	in.Externals = cfg.Externals

	opts := resolver.SearchOptions(cfg, file)
	in.BaseDirectories = opts.BaseDirectories
	in.Extensions = opts.Extensions
	in.ModuleDirectories = opts.ModuleDirectories
	return in
}

func write(w io.Writer, format string, in Inspection) error {
	switch format {
	case report.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(in)
	case report.FormatText, "":
		return writeText(w, in)
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, report.FormatText, report.FormatJSON)
	}
}

func writeText(w io.Writer, in Inspection) error {
	var b strings.Builder
	line := func(label, value string) {
		if label != "" {
			label += ":"
		}
		fmt.Fprintf(&b, "%-20s %s\n", label, value)
	}

	line("file", in.File)
	line("package root", orNone(in.PackageRoot))
	line("config file", orNone(in.ConfigFile))
	if in.ConfigError != "" {
		line("config error", in.ConfigError)
	}

	if len(in.Alias) == 0 {
		line("alias", "(none)")
	} else {
		for i, k := range slices.Sorted(maps.Keys(in.Alias)) {
			label := ""
			if i == 0 {
				label = "alias"
			}
			line(label, k+" -> "+in.Alias[k])
		}
	}

	if in.Externals.IsZero() {
		line("externals", "(none)")
	} else {
		externals, err := json.Marshal(in.Externals)
		if err != nil {
			return err
		}
		line("externals", string(externals))
	}
	line("base directories", strings.Join(in.BaseDirectories, ", "))
	line("extensions", quoteAll(in.Extensions))
	line("module directories", strings.Join(in.ModuleDirectories, ", "))
	for i, w := range in.Warnings {
		label := ""
		if i == 0 {
			label = "warnings"
		}
		line(label, w)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func quoteAll(ss []string) string {
	quoted := make([]string, len(ss))
	for i, s := range ss {
		quoted[i] = strconv.Quote(s)
	}
	return strings.Join(quoted, ", ")
}
