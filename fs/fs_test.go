/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package fs_test

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/viant/afs"

	wrfs "bennypowers.dev/webpackres/fs"
	"bennypowers.dev/webpackres/ondisk"
)

func writeTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		path := filepath.Join(root, f)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(f), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestOSFileSystem(t *testing.T) {
	root := writeTree(t, "src/a.js")
	osfs := wrfs.NewOSFileSystem()

	if !wrfs.IsFile(osfs, filepath.Join(root, "src/a.js")) {
		t.Error("expected a regular file")
	}
	if !wrfs.IsDir(osfs, filepath.Join(root, "src")) {
		t.Error("expected a directory")
	}
	if wrfs.IsFile(osfs, filepath.Join(root, "src")) || wrfs.IsDir(osfs, filepath.Join(root, "missing")) {
		t.Error("unexpected match")
	}
}

func TestOpen(t *testing.T) {
	if _, ok := wrfs.Open("").(*wrfs.OSFileSystem); !ok {
		t.Error("expected the OS filesystem for an empty URL")
	}
	if _, ok := wrfs.Open("s3://bucket/checkout").(*wrfs.AFSFileSystem); !ok {
		t.Error("expected an afs filesystem for a storage URL")
	}
}

func TestAFSFileSystem_URL(t *testing.T) {
	f := wrfs.NewAFSFileSystem(afs.New(), "s3://bucket/checkout/")
	if got := f.URL("/p/src/a.js"); got != "s3://bucket/checkout/p/src/a.js" {
		t.Errorf("URL() = %q", got)
	}
}

func TestAFSFileSystem(t *testing.T) {
	root := writeTree(t,
		"project/src/main.js",
		"project/src/button.web.js",
		"project/node_modules/dep/package.json",
		"project/node_modules/dep/lib/entry.js",
	)
	if err := os.WriteFile(filepath.Join(root, "project/node_modules/dep/package.json"), []byte(`{"main": "lib/entry"}`), 0644); err != nil {
		t.Fatal(err)
	}

	afsfs := wrfs.NewAFSFileSystem(afs.New(), "file://localhost")

	data, err := afsfs.ReadFile(filepath.Join(root, "project/src/main.js"))
	if err != nil || string(data) != "project/src/main.js" {
		t.Errorf("ReadFile = %q, %v", data, err)
	}

	if !wrfs.IsDir(afsfs, filepath.Join(root, "project/src")) {
		t.Error("expected a directory")
	}

	_, err = afsfs.Stat(filepath.Join(root, "missing.js"))
	if !errors.Is(err, iofs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}

	opts := ondisk.Options{
		BaseDirectories:   []string{filepath.Join(root, "project/src")},
		Extensions:        []string{"", ".web.js", ".js"},
		ModuleDirectories: []string{"node_modules"},
	}
	for spec, want := range map[string]string{
		"./button": "project/src/button.web.js",
		"dep":      "project/node_modules/dep/lib/entry.js",
	} {
		got, ok := ondisk.Resolve(afsfs, spec, opts)
		if !ok || got != filepath.Join(root, want) {
			t.Errorf("Resolve(%q) = %q, %v; want %s", spec, got, ok, want)
		}
	}
}
