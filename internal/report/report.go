/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package report formats resolution results for the CLI and MCP surfaces.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/webpackres/resolver"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Entry is one resolved request, or the error that stopped it.
type Entry struct {
	Request resolver.Request
	Result  resolver.Result
	Err     error
}

// Failed reports whether the entry carries an error.
func (e Entry) Failed() bool {
	return e.Err != nil
}

type jsonEntry struct {
	Specifier     string `json:"specifier"`
	ImportingFile string `json:"importingFile"`
	Outcome       string `json:"outcome,omitempty"`
	Path          string `json:"path,omitempty"`
	Error         string `json:"error,omitempty"`
}

func (e Entry) toJSON() jsonEntry {
	out := jsonEntry{
		Specifier:     e.Request.Specifier,
		ImportingFile: e.Request.ImportingFile,
	}
	if e.Err != nil {
		out.Error = e.Err.Error()
		return out
	}
	out.Outcome = e.Result.Outcome.String()
	out.Path = e.Result.Path
	return out
}

// Label renders an entry's outcome for humans, e.g. "Resolved /a.js" or "Not Found".
func Label(e Entry) string {
	if e.Err != nil {
		return "Error: " + e.Err.Error()
	}
	// a Caser keeps state between calls, so each call gets its own
	label := cases.Title(language.English).String(e.Result.Outcome.String())
	if e.Result.IsResolved() {
		label += " " + e.Result.Path
	}
	return label
}

// WriteOne writes a single entry.
func WriteOne(w io.Writer, format string, e Entry) error {
	switch format {
	case FormatJSON:
		return encode(w, e.toJSON())
	case FormatText, "":
		_, err := fmt.Fprintln(w, Label(e))
		return err
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, FormatText, FormatJSON)
	}
}

// WriteAll writes entries in order, one tab-separated line each in text format.
func WriteAll(w io.Writer, format string, entries []Entry) error {
	switch format {
	case FormatJSON:
		out := make([]jsonEntry, 0, len(entries))
		for _, e := range entries {
			out = append(out, e.toJSON())
		}
		return encode(w, out)
	case FormatText, "":
		for _, e := range entries {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", e.Request.Specifier, e.Request.ImportingFile, Label(e)); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, FormatText, FormatJSON)
	}
}

// Summary counts entries by outcome.
type Summary struct {
	Resolved int
	External int
	NotFound int
	Failed   int
}

// String renders the counts for a log line.
func (s Summary) String() string {
	return fmt.Sprintf("%d resolved, %d external, %d not found, %d failed", s.Resolved, s.External, s.NotFound, s.Failed)
}

// Summarize counts the outcomes of entries.
func Summarize(entries []Entry) Summary {
	var s Summary
	for _, e := range entries {
		switch {
		case e.Failed():
			s.Failed++
		case e.Result.IsResolved():
			s.Resolved++
		case e.Result.IsExternal():
			s.External++
		default:
			s.NotFound++
		}
	}
	return s
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
