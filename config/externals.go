/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"
)

// ExternalsKind identifies which shape an Externals declaration takes.
type ExternalsKind int

const (
	// ExternalsNone declares nothing external.
	ExternalsNone ExternalsKind = iota
	// ExternalsString matches one specifier exactly.
	ExternalsString
	// ExternalsList matches if any of its items match.
	ExternalsList
	// ExternalsPattern matches specifiers against a regular expression.
	ExternalsPattern
	// ExternalsMap matches specifiers equal to one of its keys.
	ExternalsMap
	// ExternalsFunc is a callable declaration, which cannot be evaluated.
	ExternalsFunc
)

func (k ExternalsKind) String() string {
	switch k {
	case ExternalsString:
		return "string"
	case ExternalsList:
		return "list"
	case ExternalsPattern:
		return "pattern"
	case ExternalsMap:
		return "map"
	case ExternalsFunc:
		return "function"
	default:
		return "none"
	}
}

// Reserved single-key object forms for shapes JSON and YAML cannot express natively.
const (
	regexpKey = "$regexp"
	funcKey   = "$func"
)

// YAML tags for the same shapes.
const (
	regexpTag = "!regexp"
	funcTag   = "!func"
)

// Externals is a tagged variant over the shapes webpack accepts for its
// externals option. The zero value is ExternalsNone.
type Externals struct {
	Kind ExternalsKind

	// Value is the specifier for ExternalsString, or the function name for ExternalsFunc.
	Value string

	// Items are the nested declarations of an ExternalsList.
	Items []Externals

	// Pattern is the expression of an ExternalsPattern.
	Pattern *regexp.Regexp

	// Mapping holds the keys of an ExternalsMap. Values are kept for display only.
	Mapping map[string]any
}

// String declares a single specifier external.
func String(spec string) Externals {
	return Externals{Kind: ExternalsString, Value: spec}
}

// List declares externals matching any of items.
func List(items ...Externals) Externals {
	return Externals{Kind: ExternalsList, Items: items}
}

// Pattern declares every specifier matching re external.
func Pattern(re *regexp.Regexp) Externals {
	return Externals{Kind: ExternalsPattern, Pattern: re}
}

// MustPattern compiles expr and declares matching specifiers external.
// It panics if expr does not compile.
func MustPattern(expr string) Externals {
	return Pattern(regexp.MustCompile(expr))
}

// Map declares each key of mapping external.
func Map(mapping map[string]any) Externals {
	return Externals{Kind: ExternalsMap, Mapping: mapping}
}

// Keys is a shorthand for a Map whose values are irrelevant.
func Keys(keys ...string) Externals {
	mapping := make(map[string]any, len(keys))
	for _, k := range keys {
		mapping[k] = k
	}
	return Map(mapping)
}

// Func records a callable externals declaration named name.
func Func(name string) Externals {
	return Externals{Kind: ExternalsFunc, Value: name}
}

// IsZero reports whether nothing is declared.
func (e Externals) IsZero() bool {
	return e.Kind == ExternalsNone
}

// SortedKeys returns the keys of an ExternalsMap in lexical order.
func (e Externals) SortedKeys() []string {
	keys := make([]string, 0, len(e.Mapping))
	for k := range e.Mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// UnmarshalYAML decodes every externals shape.
// Regular expressions and functions use the !regexp and !func tags,
// or the single-key {$regexp: ...} and {$func: ...} forms.
func (e *Externals) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			*e = Externals{}
			return nil
		}
		return e.UnmarshalYAML(node.Content[0])

	case yaml.AliasNode:
		return e.UnmarshalYAML(node.Alias)

	case yaml.ScalarNode:
		switch node.ShortTag() {
		case regexpTag:
			return e.compile(node.Value)
		case funcTag:
			*e = Func(node.Value)
		case "!!str":
			*e = String(node.Value)
		default:
			// null, booleans and numbers declare nothing
			*e = Externals{}
		}
		return nil

	case yaml.SequenceNode:
		items := make([]Externals, len(node.Content))
		for i, child := range node.Content {
			if err := items[i].UnmarshalYAML(child); err != nil {
				return err
			}
		}
		*e = List(items...)
		return nil

	case yaml.MappingNode:
		if len(node.Content) == 2 && node.Content[0].Value == regexpKey {
			return e.compile(node.Content[1].Value)
		}
		if len(node.Content) == 2 && node.Content[0].Value == funcKey {
			*e = Func(node.Content[1].Value)
			return nil
		}
		mapping := make(map[string]any, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			var value any
			if err := node.Content[i+1].Decode(&value); err != nil {
				return fmt.Errorf("%w: externals key %q: %w", ErrInvalidExternals, node.Content[i].Value, err)
			}
			mapping[node.Content[i].Value] = value
		}
		*e = Map(mapping)
		return nil
	}

	return fmt.Errorf("%w: unexpected YAML node at line %d", ErrInvalidExternals, node.Line)
}

// UnmarshalJSON decodes every externals shape.
// Regular expressions and functions use {"$regexp": "..."} and {"$func": "..."}.
func (e *Externals) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*e = Externals{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*e = String(s)
		return nil

	case '[':
		var items []Externals
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*e = List(items...)
		return nil

	case '{':
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		if len(raw) == 1 {
			if expr, ok := raw[regexpKey]; ok {
				var s string
				if err := json.Unmarshal(expr, &s); err != nil {
					return fmt.Errorf("%w: %s must be a string", ErrInvalidExternals, regexpKey)
				}
				return e.compile(s)
			}
			if name, ok := raw[funcKey]; ok {
				var s string
				if err := json.Unmarshal(name, &s); err != nil {
					return fmt.Errorf("%w: %s must be a string", ErrInvalidExternals, funcKey)
				}
				*e = Func(s)
				return nil
			}
		}
		mapping := make(map[string]any, len(raw))
		for k, v := range raw {
			var value any
			if err := json.Unmarshal(v, &value); err != nil {
				return err
			}
			mapping[k] = value
		}
		*e = Map(mapping)
		return nil
	}

	// null, booleans and numbers declare nothing
	*e = Externals{}
	return nil
}

// MarshalJSON encodes the declaration in the form UnmarshalJSON accepts.
func (e Externals) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case ExternalsString:
		return json.Marshal(e.Value)
	case ExternalsList:
		items := e.Items
		if items == nil {
			items = []Externals{}
		}
		return json.Marshal(items)
	case ExternalsPattern:
		if e.Pattern == nil {
			return []byte("null"), nil
		}
		return json.Marshal(map[string]string{regexpKey: e.Pattern.String()})
	case ExternalsMap:
		mapping := e.Mapping
		if mapping == nil {
			mapping = map[string]any{}
		}
		return json.Marshal(mapping)
	case ExternalsFunc:
		return json.Marshal(map[string]string{funcKey: e.Value})
	default:
		return []byte("null"), nil
	}
}

func (e *Externals) compile(expr string) error {
	re, err := regexp.Compile(expr)
	if err != nil {
		return fmt.Errorf("%w: pattern %q: %w", ErrInvalidExternals, expr, err)
	}
	*e = Pattern(re)
	return nil
}
