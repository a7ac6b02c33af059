/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fs provides the read-only filesystem abstraction used during resolution.
package fs

import (
	"io/fs"
	"os"
)

// FileSystem is the set of filesystem queries module resolution needs.
// Resolution never writes, so the interface is read-only.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	Stat(name string) (fs.FileInfo, error)
}

// IsFile reports whether path exists and is a regular file.
func IsFile(filesystem FileSystem, path string) bool {
	info, err := filesystem.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether path exists and is a directory.
func IsDir(filesystem FileSystem, path string) bool {
	info, err := filesystem.Stat(path)
	return err == nil && info.IsDir()
}

// OSFileSystem implements FileSystem using the standard os package.
type OSFileSystem struct{}

// NewOSFileSystem creates a new filesystem that uses the standard os package.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// ReadFile reads the entire contents of a file.
func (f *OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Stat returns file information for the named file.
func (f *OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}
