/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator reports build config settings that load cleanly but
// resolve in surprising ways.
package validator

import (
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"bennypowers.dev/webpackres/config"
)

// ValidationError represents a suspicious build config setting.
type ValidationError struct {
	// FilePath is the path to the config file.
	FilePath string
	// Path is the dotted path to the problematic setting.
	Path string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		sb.WriteString(": ")
	}
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// Validate checks cfg for settings that are legal but probably unintended:
//   - extensions that omit "" or the leading dot
//   - module directories given as paths, or an empty list
//   - empty or relative alias targets
//   - externals that never match, match everything, or cannot be evaluated
//   - externals shadowed by an alias
func Validate(cfg *config.BuildConfig, filePath string) []ValidationError {
	if cfg == nil {
		return nil
	}

	var errors []ValidationError
	errors = append(errors, validateExtensions(cfg.Resolve.Extensions, filePath)...)
	errors = append(errors, validateModuleDirectories(cfg.Resolve.ModulesDirectories, filePath)...)
	errors = append(errors, validateAlias(cfg.Resolve.Alias, filePath)...)
	errors = append(errors, validateExternals(cfg.Externals, filePath, "externals")...)
	errors = append(errors, validateShadowedExternals(cfg.Externals, cfg.Resolve.Alias, filePath, "externals")...)
	return errors
}

func validateExtensions(extensions []string, filePath string) []ValidationError {
	if len(extensions) == 0 {
		return nil
	}

	var errors []ValidationError
	if !slices.Contains(extensions, "") {
		errors = append(errors, ValidationError{
			FilePath:   filePath,
			Path:       "resolve.extensions",
			Message:    "specifiers that already carry an extension will not resolve",
			Suggestion: `add "" to accept exact paths`,
		})
	}

	for i, ext := range extensions {
		if ext != "" && !strings.HasPrefix(ext, ".") {
			errors = append(errors, ValidationError{
				FilePath:   filePath,
				Path:       fmt.Sprintf("resolve.extensions[%d]", i),
				Message:    fmt.Sprintf("extension %q has no leading dot", ext),
				Suggestion: fmt.Sprintf("use %q", "."+ext),
			})
		}
	}
	return errors
}

func validateModuleDirectories(dirs []string, filePath string) []ValidationError {
	if dirs == nil {
		return nil
	}
	if len(dirs) == 0 {
		return []ValidationError{{
			FilePath:   filePath,
			Path:       "resolve.modulesDirectories",
			Message:    "empty list disables the module directory search",
			Suggestion: "remove the key to use web_modules and node_modules",
		}}
	}

	var errors []ValidationError
	for i, dir := range dirs {
		if dir == "" || strings.ContainsAny(dir, `/\`) {
			errors = append(errors, ValidationError{
				FilePath:   filePath,
				Path:       fmt.Sprintf("resolve.modulesDirectories[%d]", i),
				Message:    fmt.Sprintf("%q is not a directory name", dir),
				Suggestion: "use resolve.root for a fixed directory",
			})
		}
	}
	return errors
}

func validateAlias(alias map[string]string, filePath string) []ValidationError {
	var errors []ValidationError
	for _, key := range sortedKeys(alias) {
		target := alias[key]
		path := "resolve.alias." + strconv.Quote(key)
		switch {
		case target == "":
			errors = append(errors, ValidationError{
				FilePath: filePath,
				Path:     path,
				Message:  "alias resolves to an empty path",
			})
		case !filepath.IsAbs(target):
			errors = append(errors, ValidationError{
				FilePath:   filePath,
				Path:       path,
				Message:    fmt.Sprintf("alias target %q is returned as is, without resolution", target),
				Suggestion: "use an absolute path",
			})
		}
	}
	return errors
}

func validateExternals(e config.Externals, filePath, path string) []ValidationError {
	switch e.Kind {
	case config.ExternalsString:
		if e.Value == "" {
			return []ValidationError{{
				FilePath: filePath,
				Path:     path,
				Message:  "empty external never matches",
			}}
		}
	case config.ExternalsPattern:
		if e.Pattern != nil && e.Pattern.MatchString("") {
			return []ValidationError{{
				FilePath:   filePath,
				Path:       path,
				Message:    fmt.Sprintf("pattern %q matches every specifier", e.Pattern.String()),
				Suggestion: "anchor the pattern, e.g. ^name$",
			}}
		}
	case config.ExternalsFunc:
		return []ValidationError{{
			FilePath:   filePath,
			Path:       path,
			Message:    "function externals cannot be evaluated, resolving from this package fails unless an alias applies",
			Suggestion: "list the externals as strings, patterns or map keys",
		}}
	case config.ExternalsList:
		var errors []ValidationError
		for i, item := range e.Items {
			errors = append(errors, validateExternals(item, filePath, fmt.Sprintf("%s[%d]", path, i))...)
		}
		return errors
	}
	return nil
}

// validateShadowedExternals reports externals that an alias always wins over.
func validateShadowedExternals(e config.Externals, alias map[string]string, filePath, path string) []ValidationError {
	shadowed := func(spec, at string) []ValidationError {
		if _, ok := alias[spec]; !ok || spec == "" {
			return nil
		}
		return []ValidationError{{
			FilePath:   filePath,
			Path:       at,
			Message:    fmt.Sprintf("%q is aliased, so it never resolves as external", spec),
			Suggestion: "remove either the alias or the external",
		}}
	}

	switch e.Kind {
	case config.ExternalsString:
		return shadowed(e.Value, path)
	case config.ExternalsMap:
		var errors []ValidationError
		for _, key := range e.SortedKeys() {
			errors = append(errors, shadowed(key, fmt.Sprintf("%s.%s", path, strconv.Quote(key)))...)
		}
		return errors
	case config.ExternalsList:
		var errors []ValidationError
		for i, item := range e.Items {
			errors = append(errors, validateShadowedExternals(item, alias, filePath, fmt.Sprintf("%s[%d]", path, i))...)
		}
		return errors
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
