/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package pkgroot locates the package root enclosing a source file.
package pkgroot

import (
	"errors"
	"fmt"
	"path/filepath"

	wrfs "bennypowers.dev/webpackres/fs"
)

// ManifestName is the file that marks a directory as a package root.
const ManifestName = "package.json"

// ErrNotFound indicates no ancestor directory contains a package manifest.
var ErrNotFound = errors.New("package root not found")

// Find walks up from the directory containing file and returns the first
// directory that holds a package.json.
func Find(filesystem wrfs.FileSystem, file string) (string, error) {
	if !filepath.IsAbs(file) {
		abs, err := filepath.Abs(file)
		if err != nil {
			return "", fmt.Errorf("failed to resolve path %s: %w", file, err)
		}
		file = abs
	}

	dir := filepath.Dir(file)
	for {
		if wrfs.IsFile(filesystem, filepath.Join(dir, ManifestName)) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%w above %s", ErrNotFound, file)
}
