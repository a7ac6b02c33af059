/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package ondisk implements node-style filesystem module resolution:
// extension probing, directory index files, package.json "main", and an
// upward walk through module directories.
package ondisk

import (
	"path/filepath"
	"slices"
	"strings"

	wrfs "bennypowers.dev/webpackres/fs"
	"bennypowers.dev/webpackres/internal/logger"
	"bennypowers.dev/webpackres/specifier"
)

// Options are the search parameters for a single resolution.
type Options struct {
	// BaseDirectories lists the search roots in order. The first entry is the
	// directory relative specifiers are joined to and where the module
	// directory walk starts. Later entries are extra roots tried for bare
	// specifiers after the walk.
	BaseDirectories []string

	// Extensions are appended to candidate paths in order.
	// The empty string accepts the candidate path itself.
	Extensions []string

	// ModuleDirectories are the directory names searched at every level of
	// the upward walk, in order.
	ModuleDirectories []string
}

// Resolve resolves spec to an absolute file path.
// Returns ("", false) when no candidate exists.
func Resolve(filesystem wrfs.FileSystem, spec string, opts Options) (string, bool) {
	q := query{fs: filesystem, opts: opts}
	if len(q.opts.Extensions) == 0 {
		q.opts.Extensions = []string{""}
	}

	parsed := specifier.Parse(spec)
	switch parsed.Kind {
	case specifier.KindAbsolute:
		return q.loadAsFileOrDirectory(spec)
	case specifier.KindRelative:
		if len(opts.BaseDirectories) == 0 {
			return "", false
		}
		return q.loadAsFileOrDirectory(joinKeepingSlash(opts.BaseDirectories[0], spec))
	default:
		return q.loadBare(parsed)
	}
}

type query struct {
	fs   wrfs.FileSystem
	opts Options
}

func (q query) loadBare(parsed *specifier.Specifier) (string, bool) {
	if len(q.opts.BaseDirectories) == 0 {
		return "", false
	}
	spec := parsed.Raw

	for _, dir := range q.moduleDirs(q.opts.BaseDirectories[0]) {
		// a subpath can only exist inside the package directory
		if parsed.Subpath != "" && !wrfs.IsDir(q.fs, filepath.Join(dir, parsed.Package)) {
			continue
		}
		if path, ok := q.loadAsFileOrDirectory(joinKeepingSlash(dir, spec)); ok {
			return path, true
		}
	}

	for _, root := range q.opts.BaseDirectories[1:] {
		logger.Debug("trying %q under root %s", spec, root)
		if path, ok := q.loadAsFileOrDirectory(joinKeepingSlash(root, spec)); ok {
			return path, true
		}
	}

	return "", false
}

// moduleDirs lists every <ancestor>/<name> candidate from start up to the
// filesystem root. Ancestors that are themselves module directories are skipped.
func (q query) moduleDirs(start string) []string {
	var dirs []string
	dir := filepath.Clean(start)
	for {
		if !slices.Contains(q.opts.ModuleDirectories, filepath.Base(dir)) {
			for _, name := range q.opts.ModuleDirectories {
				dirs = append(dirs, filepath.Join(dir, name))
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return dirs
}

func (q query) loadAsFileOrDirectory(path string) (string, bool) {
	if !strings.HasSuffix(path, "/") {
		if file, ok := q.loadAsFile(filepath.Clean(path)); ok {
			return file, true
		}
	}
	return q.loadAsDirectory(filepath.Clean(path))
}

func (q query) loadAsFile(path string) (string, bool) {
	for _, ext := range q.opts.Extensions {
		candidate := path + ext
		if wrfs.IsFile(q.fs, candidate) {
			logger.Debug("found %s", candidate)
			return candidate, true
		}
	}
	return "", false
}

func (q query) loadAsDirectory(dir string) (string, bool) {
	if !wrfs.IsDir(q.fs, dir) {
		return "", false
	}

	if main, ok := readMain(q.fs, dir); ok {
		target := filepath.Join(dir, main)
		// A manifest names a literal path, so try it exactly before probing extensions.
		if wrfs.IsFile(q.fs, target) {
			return target, true
		}
		if file, ok := q.loadAsFile(target); ok {
			return file, true
		}
		if file, ok := q.loadIndex(target); ok {
			return file, true
		}
		logger.Debug("main %q of %s does not exist", main, dir)
	}

	return q.loadIndex(dir)
}

func (q query) loadIndex(dir string) (string, bool) {
	return q.loadAsFile(filepath.Join(dir, "index"))
}

// joinKeepingSlash joins like filepath.Join but keeps a trailing slash,
// which marks a specifier that may only resolve as a directory.
// "." and ".." name directories too.
func joinKeepingSlash(dir, spec string) string {
	joined := filepath.Join(dir, spec)
	dirOnly := strings.HasSuffix(spec, "/") || spec == "." || spec == ".."
	if dirOnly && !strings.HasSuffix(joined, "/") {
		joined += "/"
	}
	return joined
}
