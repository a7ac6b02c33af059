/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import "errors"

// Sentinel errors for configuration loading.
var (
	// ErrInvalidExternals indicates an externals declaration could not be decoded.
	ErrInvalidExternals = errors.New("invalid externals declaration")

	// ErrInvalidConfig indicates a config file exists but could not be parsed.
	ErrInvalidConfig = errors.New("invalid build config")
)
