/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import "testing"

func TestGet_LdflagsVersionWins(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = "v1.2.3"
	if got := Get(); got != "v1.2.3" {
		t.Errorf("Get() = %q, want %q", got, "v1.2.3")
	}
	if got := Info()["version"]; got != "v1.2.3" {
		t.Errorf("Info()[version] = %q, want %q", got, "v1.2.3")
	}
}
