/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import "bennypowers.dev/webpackres/config"

// matchExternal reports whether spec is declared external by e.
// Lists are searched left to right and stop at the first match, so a
// function declared after a matching entry is never reached.
func matchExternal(spec string, e config.Externals) (bool, error) {
	switch e.Kind {
	case config.ExternalsString:
		return e.Value != "" && spec == e.Value, nil

	case config.ExternalsList:
		for _, item := range e.Items {
			matched, err := matchExternal(spec, item)
			if err != nil || matched {
				return matched, err
			}
		}
		return false, nil

	case config.ExternalsPattern:
		return e.Pattern != nil && e.Pattern.MatchString(spec), nil

	case config.ExternalsMap:
		_, ok := e.Mapping[spec]
		return ok, nil

	case config.ExternalsFunc:
		return false, &ConfigError{
			Shape:  e.Kind.String(),
			Detail: e.Value,
			Err:    ErrUnsupportedExternals,
		}

	default:
		return false, nil
	}
}
