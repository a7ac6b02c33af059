/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

// lookupAlias returns the replacement for spec when it is an exact alias key.
// Prefixes and path segments never match.
func lookupAlias(aliases map[string]string, spec string) (string, bool) {
	path, ok := aliases[spec]
	return path, ok
}
