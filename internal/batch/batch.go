/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package batch resolves many independent requests concurrently.
package batch

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/sourcegraph/conc/iter"

	"bennypowers.dev/webpackres/internal/report"
	"bennypowers.dev/webpackres/resolver"
)

// Resolver is the part of *resolver.Resolver a batch needs.
type Resolver interface {
	ResolveRequest(req resolver.Request) (resolver.Result, error)
}

// Run resolves every request concurrently and returns entries in input order.
func Run(r Resolver, requests []resolver.Request) []report.Entry {
	return iter.Map(requests, func(req *resolver.Request) report.Entry {
		result, err := r.ResolveRequest(*req)
		return report.Entry{Request: *req, Result: result, Err: err}
	})
}

// Parse reads "specifier<TAB>importing-file" lines.
// Blank lines and lines starting with # that contain no TAB are skipped, so
// "#internal/util<TAB>file" is still a request. Relative importing files are
// made absolute against baseDir.
func Parse(in io.Reader, baseDir string) ([]resolver.Request, error) {
	var requests []resolver.Request

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || (strings.HasPrefix(line, "#") && !strings.Contains(line, "\t")) {
			continue
		}

		spec, file, ok := strings.Cut(line, "\t")
		spec, file = strings.TrimSpace(spec), strings.TrimSpace(file)
		if !ok || spec == "" || file == "" {
			return nil, fmt.Errorf("line %d: want specifier<TAB>importing-file, got %q", lineNo, line)
		}

		if !filepath.IsAbs(file) {
			file = filepath.Join(baseDir, file)
		}
		requests = append(requests, resolver.Request{Specifier: spec, ImportingFile: file})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}
