/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides testing utilities for webpackres.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bennypowers.dev/webpackres/internal/mapfs"
)

// NewFixtureFS loads fixture files from testdata and returns a MapFileSystem
// with files mapped to the specified root path.
func NewFixtureFS(t *testing.T, fixtureDir string, rootPath string) *mapfs.MapFileSystem {
	t.Helper()

	mfs := mapfs.New()
	AddFixture(t, mfs, fixtureDir, rootPath)
	return mfs
}

// AddFixture copies a testdata fixture tree into mfs under rootPath.
func AddFixture(t *testing.T, mfs *mapfs.MapFileSystem, fixtureDir string, rootPath string) {
	t.Helper()

	fixturePath := findTestdata(fixtureDir)
	if fixturePath == "" {
		t.Fatalf("Could not find fixtures at %s (tried all paths)", fixtureDir)
	}

	err := filepath.WalkDir(fixturePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(fixturePath, path)
		if err != nil {
			return err
		}

		mfs.AddFile(filepath.Join(rootPath, relPath), string(content), 0644)
		return nil
	})

	if err != nil {
		t.Fatalf("Failed to load fixtures from %s: %v", fixtureDir, err)
	}
}

// NewTreeFS builds a MapFileSystem from path -> content pairs.
// Paths ending in "/" become empty directories.
func NewTreeFS(t *testing.T, tree map[string]string) *mapfs.MapFileSystem {
	t.Helper()

	mfs := mapfs.New()
	for path, content := range tree {
		if strings.HasSuffix(path, "/") {
			mfs.AddDir(path, 0755)
			continue
		}
		mfs.AddFile(path, content, 0644)
	}
	return mfs
}

// findTestdata tries multiple possible paths since Go test changes working directory.
func findTestdata(rel string) string {
	possiblePaths := []string{
		filepath.Join("testdata", rel),
		filepath.Join("..", "testdata", rel),
		filepath.Join("..", "..", "testdata", rel),
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
