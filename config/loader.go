/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	wrfs "bennypowers.dev/webpackres/fs"
	"bennypowers.dev/webpackres/internal/logger"
	"bennypowers.dev/webpackres/pkgroot"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "webpack.config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load searches for webpack.config.{yaml,yml,json} in rootDir.
// Returns nil if no config found (not an error).
// A relative resolve.root is made absolute against rootDir.
func Load(filesystem wrfs.FileSystem, rootDir string) (*BuildConfig, error) {
	configPath := Find(filesystem, rootDir)
	if configPath == "" {
		return nil, nil
	}

	data, err := filesystem.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	cfg := &BuildConfig{}
	switch filepath.Ext(configPath) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, configPath, err)
		}
	case ".json":
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, configPath, err)
		}
	}

	if cfg.Resolve.Root != "" && !filepath.IsAbs(cfg.Resolve.Root) {
		cfg.Resolve.Root = filepath.Join(rootDir, cfg.Resolve.Root)
	}

	return cfg, nil
}

// Find returns the path of the config file Load would read in rootDir,
// or "" if there is none.
func Find(filesystem wrfs.FileSystem, rootDir string) string {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigFileName+ext)
		if wrfs.IsFile(filesystem, configPath) {
			return configPath
		}
	}
	return ""
}

// OrEmpty collapses the result of loading the config for file into a usable
// config: a missing config or any load error yields the empty config.
// Files outside any package are expected and logged at debug level; other
// errors are logged as warnings.
func OrEmpty(cfg *BuildConfig, err error, file string) *BuildConfig {
	if err != nil {
		if errors.Is(err, pkgroot.ErrNotFound) {
			logger.Debug("using empty config for %s: %v", file, err)
		} else {
			logger.Warn("ignoring build config for %s: %v", file, err)
		}
		return Empty()
	}
	if cfg == nil {
		return Empty()
	}
	return cfg
}

// LoadForFile loads the config of the package enclosing file.
// Returns nil with no error when the package has no config file.
func LoadForFile(filesystem wrfs.FileSystem, file string) (*BuildConfig, error) {
	root, err := pkgroot.Find(filesystem, file)
	if err != nil {
		return nil, err
	}
	return Load(filesystem, root)
}

// Cache memoizes loaded configs by package root.
// It is safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	cfg *BuildConfig
	err error
}

// NewCache creates an empty config cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]cacheEntry)}
}

// LoadForFile behaves like the package-level LoadForFile, reading each
// package root's config at most once. The package root lookup itself is
// not cached.
func (c *Cache) LoadForFile(filesystem wrfs.FileSystem, file string) (*BuildConfig, error) {
	root, err := pkgroot.Find(filesystem, file)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	entry, ok := c.entries[root]
	c.mu.RUnlock()
	if ok {
		return entry.cfg, entry.err
	}

	cfg, err := Load(filesystem, root)

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[root]; ok {
		return existing.cfg, existing.err
	}
	c.entries[root] = cacheEntry{cfg: cfg, err: err}
	return cfg, err
}
