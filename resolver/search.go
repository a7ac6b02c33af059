/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"path/filepath"
	"slices"

	"bennypowers.dev/webpackres/config"
	"bennypowers.dev/webpackres/ondisk"
)

// DefaultExtensions are tried when the config declares none:
// the exact path first, then conventional JavaScript suffixes.
var DefaultExtensions = []string{"", ".webpack.js", ".web.js", ".js"}

// DefaultModuleDirectories are searched at every level of the upward walk
// when the config declares none.
var DefaultModuleDirectories = []string{"web_modules", "node_modules"}

// SearchOptions composes the parameters handed to the filesystem resolver
// for a specifier imported from importingFile. It performs no filesystem access.
func SearchOptions(cfg *config.BuildConfig, importingFile string) ondisk.Options {
	if cfg == nil {
		cfg = config.Empty()
	}

	bases := []string{filepath.Dir(importingFile)}
	if cfg.Resolve.Root != "" {
		bases = append(bases, cfg.Resolve.Root)
	}

	extensions := cfg.Resolve.Extensions
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	moduleDirs := cfg.Resolve.ModulesDirectories
	if moduleDirs == nil {
		moduleDirs = DefaultModuleDirectories
	}

	return ondisk.Options{
		BaseDirectories:   bases,
		Extensions:        slices.Clone(extensions),
		ModuleDirectories: slices.Clone(moduleDirs),
	}
}
