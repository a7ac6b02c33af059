/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package which provides the which command for webpackres.
package which

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/webpackres/config"
	"bennypowers.dev/webpackres/fs"
	"bennypowers.dev/webpackres/internal/batch"
	"bennypowers.dev/webpackres/internal/logger"
	"bennypowers.dev/webpackres/internal/report"
	"bennypowers.dev/webpackres/resolver"
)

// Cmd is the which cobra command.
var Cmd = &cobra.Command{
	Use:   "which <specifier> <glob>",
	Short: "Show what a specifier resolves to from many importing files",
	Long: `Resolve one specifier from every file matching a glob pattern.

Useful for spotting packages that resolve a dependency differently,
for example because of per-package aliases or module directories.

The glob is always expanded against the local working tree. Configs and
candidate files are then read through --storage when it is set, so a local
checkout can be compared against a remote copy of the same layout.

Examples:
  webpackres which react 'packages/*/src/index.js'
  webpackres which lodash 'src/**/*.js' --format json`,
	Args: cobra.ExactArgs(2),
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	spec, pattern := args[0], args[1]

	base, pat := doublestar.SplitPattern(filepath.ToSlash(pattern))
	base, err := filepath.Abs(filepath.FromSlash(base))
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", pattern, err)
	}

	files, err := globFiles(os.DirFS(base), base, pat)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files match %s", pattern)
	}

	entries := resolveAll(fs.Open(viper.GetString("storage")), spec, files)
	if err := report.WriteAll(cmd.OutOrStdout(), viper.GetString("format"), entries); err != nil {
		return err
	}
	logger.Info("%s: %s", spec, report.Summarize(entries))
	return nil
}

// globFiles returns the absolute paths of regular files in fsys matching
// pattern, where fsys is rooted at base.
func globFiles(fsys iofs.FS, base, pattern string) ([]string, error) {
	matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		files = append(files, filepath.Join(base, filepath.FromSlash(m)))
	}
	return files, nil
}

// resolveAll resolves spec from each file, reading configs and candidates from fsys.
func resolveAll(fsys fs.FileSystem, spec string, files []string) []report.Entry {
	r := resolver.New(resolver.Options{FS: fsys, Config: config.NewCache().LoadForFile})
	return batch.Run(r, requests(spec, files))
}

func requests(spec string, files []string) []resolver.Request {
	reqs := make([]resolver.Request, len(files))
	for i, f := range files {
		reqs[i] = resolver.Request{Specifier: spec, ImportingFile: f}
	}
	return reqs
}
