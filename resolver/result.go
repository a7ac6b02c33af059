/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import "encoding/json"

// Outcome is one of the three mutually exclusive results of a resolution.
type Outcome int

const (
	// NotFound means no rule resolved the specifier. Callers decide how to report it.
	NotFound Outcome = iota
	// Resolved means the specifier maps to a concrete path.
	Resolved
	// External means the specifier is provided at runtime outside the filesystem.
	External
)

func (o Outcome) String() string {
	switch o {
	case Resolved:
		return "resolved"
	case External:
		return "external"
	default:
		return "not found"
	}
}

// Request is a single specifier to resolve from an importing file.
type Request struct {
	Specifier     string `json:"specifier"`
	ImportingFile string `json:"importingFile"`
}

// Result is the outcome of resolving a specifier.
// Path is set only when Outcome is Resolved. The zero value is NotFound.
type Result struct {
	Outcome Outcome
	Path    string
}

// ResolvedTo returns a Resolved result for path.
func ResolvedTo(path string) Result {
	return Result{Outcome: Resolved, Path: path}
}

// ExternalResult returns an External result.
func ExternalResult() Result {
	return Result{Outcome: External}
}

// NotFoundResult returns a NotFound result.
func NotFoundResult() Result {
	return Result{}
}

// IsResolved reports whether the result carries a path.
func (r Result) IsResolved() bool {
	return r.Outcome == Resolved
}

// IsExternal reports whether the specifier was declared external.
func (r Result) IsExternal() bool {
	return r.Outcome == External
}

// IsNotFound reports whether nothing resolved the specifier.
func (r Result) IsNotFound() bool {
	return r.Outcome == NotFound
}

func (r Result) String() string {
	if r.Outcome == Resolved {
		return "resolved " + r.Path
	}
	return r.Outcome.String()
}

// MarshalJSON encodes the result as {"outcome": "...", "path": "..."}.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Outcome string `json:"outcome"`
		Path    string `json:"path,omitempty"`
	}{
		Outcome: r.Outcome.String(),
		Path:    r.Path,
	})
}
