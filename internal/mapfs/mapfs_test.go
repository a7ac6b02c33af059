/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mapfs

import (
	"testing"

	wrfs "bennypowers.dev/webpackres/fs"
)

var _ wrfs.FileSystem = (*MapFileSystem)(nil)

func TestMapFileSystem(t *testing.T) {
	mfs := New()
	mfs.AddFile("/project/src/a.js", "a", 0644)
	mfs.AddFile(`\project\b.js`, "b", 0644)
	mfs.AddDir("/project/empty/", 0755)

	data, err := mfs.ReadFile("/project/src/a.js")
	if err != nil || string(data) != "a" {
		t.Errorf("ReadFile = %q, %v", data, err)
	}

	if !wrfs.IsFile(mfs, "/project/b.js") {
		t.Error("expected backslash path to be normalized")
	}
	if !wrfs.IsDir(mfs, "/project/src") {
		t.Error("expected implied directory")
	}
	if !wrfs.IsDir(mfs, "/project/empty") {
		t.Error("expected explicit directory")
	}
	if !wrfs.IsDir(mfs, "/") {
		t.Error("expected root directory")
	}
	if wrfs.IsFile(mfs, "/project/src") || wrfs.IsDir(mfs, "/project/src/a.js") {
		t.Error("files and directories must not be confused")
	}
	if _, err := mfs.Stat("/missing"); err == nil {
		t.Error("expected error for missing path")
	}
}
