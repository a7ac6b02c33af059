/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides the webpack-style build configuration consulted
// during module resolution, and loads it from a package root.
package config

// BuildConfig is the subset of a webpack configuration that affects resolution.
// Every field is optional; the zero value is the empty configuration.
type BuildConfig struct {
	// Resolve holds the resolve.* options.
	Resolve ResolveConfig `yaml:"resolve" json:"resolve"`

	// Externals declares specifiers provided at runtime by other means.
	Externals Externals `yaml:"externals" json:"externals"`
}

// ResolveConfig mirrors webpack's resolve section.
type ResolveConfig struct {
	// Alias maps an exact specifier to a replacement path.
	Alias map[string]string `yaml:"alias" json:"alias"`

	// Root is an extra directory searched for bare specifiers after the module directories.
	Root string `yaml:"root" json:"root"`

	// Extensions are tried in order. The empty string accepts the exact path.
	Extensions []string `yaml:"extensions" json:"extensions"`

	// ModulesDirectories are the directory names searched while walking up from the importing file.
	ModulesDirectories []string `yaml:"modulesDirectories" json:"modulesDirectories"`
}

// Empty returns a configuration with every field absent.
func Empty() *BuildConfig {
	return &BuildConfig{}
}

