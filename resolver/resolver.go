/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver resolves import specifiers the way a webpack build would,
// honoring aliases, externals, extensions, module directories and an extra
// root from the importing package's build config.
package resolver

import (
	"bennypowers.dev/webpackres/config"
	wrfs "bennypowers.dev/webpackres/fs"
	"bennypowers.dev/webpackres/internal/logger"
	"bennypowers.dev/webpackres/ondisk"
)

// ConfigSource loads the build config that applies to file.
// A nil config with a nil error means the package has no config.
type ConfigSource func(filesystem wrfs.FileSystem, file string) (*config.BuildConfig, error)

// Options configures a Resolver.
type Options struct {
	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS wrfs.FileSystem

	// Config loads the build config for an importing file.
	// Defaults to config.LoadForFile. Pass a config.Cache's LoadForFile
	// to reuse configs across requests.
	Config ConfigSource
}

// Resolver resolves specifiers. It holds no per-request state and is safe
// for concurrent use.
type Resolver struct {
	fs     wrfs.FileSystem
	config ConfigSource
}

// New creates a Resolver.
func New(opts Options) *Resolver {
	r := &Resolver{fs: opts.FS, config: opts.Config}
	if r.fs == nil {
		r.fs = wrfs.NewOSFileSystem()
	}
	if r.config == nil {
		r.config = config.LoadForFile
	}
	return r
}

// Resolve resolves spec as imported from importingFile using the OS filesystem.
func Resolve(spec, importingFile string) (Result, error) {
	return New(Options{}).Resolve(spec, importingFile)
}

// Resolve resolves spec as imported from importingFile, which must be an
// absolute path.
//
// Rules apply in a fixed order:
//  1. resolve.alias: an exact key resolves to its value, unchecked.
//  2. externals: a match yields External. Function declarations fail with
//     a *ConfigError wrapping ErrUnsupportedExternals.
//  3. the filesystem search, which yields Resolved or NotFound.
//
// A missing or unreadable build config is treated as empty. The only error
// returned is a *ConfigError.
func (r *Resolver) Resolve(spec, importingFile string) (Result, error) {
	cfg := r.loadConfig(importingFile)

	if path, ok := lookupAlias(cfg.Resolve.Alias, spec); ok {
		logger.Debug("%q aliased to %s", spec, path)
		return ResolvedTo(path), nil
	}

	external, err := matchExternal(spec, cfg.Externals)
	if err != nil {
		return Result{}, err
	}
	if external {
		logger.Debug("%q is external", spec)
		return ExternalResult(), nil
	}

	if path, ok := ondisk.Resolve(r.fs, spec, SearchOptions(cfg, importingFile)); ok {
		return ResolvedTo(path), nil
	}

	logger.Debug("%q not found from %s", spec, importingFile)
	return NotFoundResult(), nil
}

// ResolveRequest resolves a Request.
func (r *Resolver) ResolveRequest(req Request) (Result, error) {
	return r.Resolve(req.Specifier, req.ImportingFile)
}

// loadConfig collapses every load failure into the empty config.
func (r *Resolver) loadConfig(importingFile string) *config.BuildConfig {
	cfg, err := r.config(r.fs, importingFile)
	return config.OrEmpty(cfg, err, importingFile)
}
