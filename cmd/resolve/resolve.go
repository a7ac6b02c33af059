/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve provides the resolve command for webpackres.
package resolve

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/webpackres/config"
	"bennypowers.dev/webpackres/fs"
	"bennypowers.dev/webpackres/internal/batch"
	"bennypowers.dev/webpackres/internal/logger"
	"bennypowers.dev/webpackres/internal/report"
	"bennypowers.dev/webpackres/resolver"
)

// ErrUnresolved is returned in strict mode when a specifier is not found.
var ErrUnresolved = errors.New("unresolved specifiers")

// Cmd is the resolve cobra command.
var Cmd = &cobra.Command{
	Use:   "resolve <specifier> <importing-file>",
	Short: "Resolve a specifier as imported from a file",
	Long: `Resolve a specifier as imported from a file, printing the resolved path,
"External" for declared externals, or "Not Found".

Examples:
  webpackres resolve ./button src/app.js
  webpackres resolve --format json lodash src/app.js

  # Resolve many specifiers concurrently, one specifier<TAB>file per line
  webpackres resolve --batch imports.tsv
  find src -name '*.js' | awk '{print "react\t" $0}' | webpackres resolve --batch -`,
	Args: func(cmd *cobra.Command, args []string) error {
		if batchPath, _ := cmd.Flags().GetString("batch"); batchPath != "" {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(2)(cmd, args)
	},
	RunE: run,
}

func init() {
	Cmd.Flags().String("batch", "", "Read specifier<TAB>importing-file lines from a file (- for stdin); lines starting with # and no TAB are comments")
	Cmd.Flags().Bool("strict", false, "Exit non-zero when a specifier is not found")
}

type options struct {
	format string
	strict bool
	fs     fs.FileSystem
}

func run(cmd *cobra.Command, args []string) error {
	batchPath, _ := cmd.Flags().GetString("batch")
	strict, _ := cmd.Flags().GetBool("strict")

	opts := options{
		format: viper.GetString("format"),
		strict: strict,
		fs:     fs.Open(viper.GetString("storage")),
	}

	if batchPath != "" {
		in := cmd.InOrStdin()
		if batchPath != "-" {
			f, err := os.Open(batchPath)
			if err != nil {
				return fmt.Errorf("error opening batch file: %w", err)
			}
			defer f.Close()
			in = f
		}

		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		return resolveBatch(opts, in, cwd, cmd.OutOrStdout())
	}

	file, err := filepath.Abs(args[1])
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", args[1], err)
	}
	return resolveOne(opts, resolver.Request{Specifier: args[0], ImportingFile: file}, cmd.OutOrStdout())
}

func resolveOne(opts options, req resolver.Request, out io.Writer) error {
	r := resolver.New(resolver.Options{FS: opts.fs})

	result, err := r.ResolveRequest(req)
	if err != nil {
		return err
	}

	if err := report.WriteOne(out, opts.format, report.Entry{Request: req, Result: result}); err != nil {
		return err
	}

	if opts.strict && result.IsNotFound() {
		return fmt.Errorf("%w: %s", ErrUnresolved, req.Specifier)
	}
	return nil
}

func resolveBatch(opts options, in io.Reader, baseDir string, out io.Writer) error {
	requests, err := batch.Parse(in, baseDir)
	if err != nil {
		return fmt.Errorf("error reading batch: %w", err)
	}

	r := resolver.New(resolver.Options{
		FS:     opts.fs,
		Config: config.NewCache().LoadForFile,
	})

	entries := batch.Run(r, requests)
	if err := report.WriteAll(out, opts.format, entries); err != nil {
		return err
	}

	summary := report.Summarize(entries)
	logger.Info("%s", summary)
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d requests failed", summary.Failed, len(entries))
	}
	if opts.strict && summary.NotFound > 0 {
		return fmt.Errorf("%w: %d of %d", ErrUnresolved, summary.NotFound, len(entries))
	}
	return nil
}
