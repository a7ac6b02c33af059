/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package which

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/webpackres/resolver"
	"bennypowers.dev/webpackres/testutil"
)

func TestGlobFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"packages/a/src/index.js":      {},
		"packages/b/src/index.js":      {},
		"packages/b/src/deep/util.js":  {},
		"packages/c/README.md":         {},
		"packages/d/src/index.js/x.js": {},
	}

	files, err := globFiles(fsys, "/repo", "packages/*/src/index.js")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/repo/packages/a/src/index.js",
		"/repo/packages/b/src/index.js",
	}, files)

	files, err = globFiles(fsys, "/repo", "packages/b/**/*.js")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"/repo/packages/b/src/index.js",
		"/repo/packages/b/src/deep/util.js",
	}, files)
}

func TestGlobFiles_BadPattern(t *testing.T) {
	_, err := globFiles(fstest.MapFS{}, "/repo", "[")
	assert.Error(t, err)
}

func TestWhich_PerPackageResolution(t *testing.T) {
	mfs := testutil.NewTreeFS(t, map[string]string{
		"/repo/packages/a/package.json":                `{"name": "a"}`,
		"/repo/packages/a/webpack.config.yaml":         "externals: [react]",
		"/repo/packages/a/src/index.js":                "",
		"/repo/packages/b/package.json":                `{"name": "b"}`,
		"/repo/packages/b/webpack.config.yaml":         "resolve: {alias: {react: /vendor/react.js}}",
		"/repo/packages/b/src/index.js":                "",
		"/repo/packages/c/package.json":                `{"name": "c"}`,
		"/repo/packages/c/src/index.js":                "",
		"/repo/packages/c/node_modules/react/index.js": "",
	})

	entries := resolveAll(mfs, "react", []string{
		"/repo/packages/a/src/index.js",
		"/repo/packages/b/src/index.js",
		"/repo/packages/c/src/index.js",
	})

	require.Len(t, entries, 3)
	assert.True(t, entries[0].Result.IsExternal())
	assert.Equal(t, resolver.ResolvedTo("/vendor/react.js"), entries[1].Result)
	assert.Equal(t, resolver.ResolvedTo("/repo/packages/c/node_modules/react/index.js"), entries[2].Result)
}
