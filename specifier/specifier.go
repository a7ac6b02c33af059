/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package specifier classifies import specifiers as written in source files.
package specifier

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Kind indicates the type of specifier.
type Kind int

const (
	// KindBare is a package name, optionally followed by a subpath ("lodash", "@scope/pkg/file").
	KindBare Kind = iota
	// KindRelative starts with "./" or "../", or is exactly "." or "..".
	KindRelative
	// KindAbsolute is an absolute filesystem path.
	KindAbsolute
)

func (k Kind) String() string {
	switch k {
	case KindRelative:
		return "relative"
	case KindAbsolute:
		return "absolute"
	default:
		return "bare"
	}
}

// Specifier represents a parsed import specifier.
type Specifier struct {
	// Kind is the type of specifier (bare, relative, absolute).
	Kind Kind

	// Package is the package name for bare specifiers (e.g., "@scope/pkg" or "pkg").
	Package string

	// Subpath is the path within the package for bare specifiers, without a leading slash.
	Subpath string

	// Raw is the original specifier string.
	Raw string
}

// barePattern matches @scope/pkg/path, pkg/path, or bare pkg
var barePattern = regexp.MustCompile(`^(@[^/]+/[^/]+|[^/]+)(/.*)?$`)

// Parse parses a specifier string into a Specifier struct.
func Parse(spec string) *Specifier {
	if IsRelative(spec) {
		return &Specifier{Kind: KindRelative, Raw: spec}
	}

	if filepath.IsAbs(spec) || strings.HasPrefix(spec, "/") {
		return &Specifier{Kind: KindAbsolute, Raw: spec}
	}

	parsed := &Specifier{Kind: KindBare, Package: spec, Raw: spec}
	if matches := barePattern.FindStringSubmatch(spec); len(matches) == 3 {
		parsed.Package = matches[1]
		parsed.Subpath = strings.TrimPrefix(matches[2], "/")
	}
	return parsed
}

// IsRelative returns true for specifiers resolved against the importing file's directory.
func IsRelative(spec string) bool {
	return spec == "." || spec == ".." ||
		strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../")
}
