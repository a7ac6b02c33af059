/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package ondisk

import (
	"encoding/json"
	"path/filepath"

	"github.com/tidwall/jsonc"

	wrfs "bennypowers.dev/webpackres/fs"
	"bennypowers.dev/webpackres/internal/logger"
)

// packageJSON holds the manifest fields resolution reads.
type packageJSON struct {
	Main string `json:"main"`
}

// readMain returns the "main" entry of dir/package.json.
// A missing or malformed manifest is treated as having no main.
func readMain(filesystem wrfs.FileSystem, dir string) (string, bool) {
	manifest := filepath.Join(dir, "package.json")
	if !wrfs.IsFile(filesystem, manifest) {
		return "", false
	}

	data, err := filesystem.ReadFile(manifest)
	if err != nil {
		logger.Debug("reading %s: %v", manifest, err)
		return "", false
	}

	var pkg packageJSON
	if err := json.Unmarshal(jsonc.ToJSON(data), &pkg); err != nil {
		logger.Debug("parsing %s: %v", manifest, err)
		return "", false
	}

	if pkg.Main == "" || pkg.Main == "." || pkg.Main == "./" {
		return "", false
	}
	return pkg.Main, true
}
