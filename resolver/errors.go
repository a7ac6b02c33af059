/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"errors"
	"fmt"
)

// ErrUnsupportedExternals indicates an externals declaration that cannot be
// evaluated without running host code, such as a function.
var ErrUnsupportedExternals = errors.New("unsupported externals declaration")

// ConfigError reports a build configuration that resolution refuses to guess about.
type ConfigError struct {
	// Shape names the offending externals shape, e.g. "function".
	Shape string
	// Detail identifies the declaration, e.g. the function name.
	Detail string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("unable to handle %s externals (%s): %v", e.Shape, e.Detail, e.Err)
	}
	return fmt.Sprintf("unable to handle %s externals: %v", e.Shape, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
