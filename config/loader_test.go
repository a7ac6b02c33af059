/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"

	"bennypowers.dev/webpackres/internal/logger"
	"bennypowers.dev/webpackres/pkgroot"
	"bennypowers.dev/webpackres/testutil"
)

func TestLoad_YAML(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/yaml", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	if got := cfg.Resolve.Alias["jquery"]; got != "/opt/vendor/jquery-2.1.4.js" {
		t.Errorf("expected jquery alias, got %q", got)
	}
	if got := cfg.Resolve.Alias["config"]; got != "./src/config.prod.js" {
		t.Errorf("alias values must be kept literally, got %q", got)
	}

	if cfg.Resolve.Root != "/project/shared" {
		t.Errorf("expected relative root made absolute, got %q", cfg.Resolve.Root)
	}

	wantExt := []string{"", ".web.js", ".js"}
	if len(cfg.Resolve.Extensions) != len(wantExt) {
		t.Fatalf("expected extensions %v, got %v", wantExt, cfg.Resolve.Extensions)
	}
	for i, ext := range wantExt {
		if cfg.Resolve.Extensions[i] != ext {
			t.Errorf("extension %d = %q, want %q", i, cfg.Resolve.Extensions[i], ext)
		}
	}

	if len(cfg.Resolve.ModulesDirectories) != 2 || cfg.Resolve.ModulesDirectories[0] != "vendor_modules" {
		t.Errorf("expected [vendor_modules node_modules], got %v", cfg.Resolve.ModulesDirectories)
	}

	ext := cfg.Externals
	if ext.Kind != ExternalsList || len(ext.Items) != 4 {
		t.Fatalf("expected list of 4 externals, got %v with %d items", ext.Kind, len(ext.Items))
	}
	if ext.Items[0].Kind != ExternalsString || ext.Items[0].Value != "react" {
		t.Errorf("item 0 = %+v, want string react", ext.Items[0])
	}
	if ext.Items[1].Kind != ExternalsPattern || ext.Items[1].Pattern.String() != "^@corp/" {
		t.Errorf("item 1 = %+v, want pattern ^@corp/", ext.Items[1])
	}
	if ext.Items[2].Kind != ExternalsMap {
		t.Errorf("item 2 kind = %v, want map", ext.Items[2].Kind)
	}
	if keys := ext.Items[2].SortedKeys(); len(keys) != 2 || keys[0] != "lodash" || keys[1] != "moment" {
		t.Errorf("item 2 keys = %v", keys)
	}
	if ext.Items[3].Kind != ExternalsList || len(ext.Items[3].Items) != 2 {
		t.Errorf("item 3 = %+v, want nested list of 2", ext.Items[3])
	}
}

func TestLoad_JSONWithComments(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/json", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	if cfg.Resolve.Root != "/abs/shared" {
		t.Errorf("expected absolute root unchanged, got %q", cfg.Resolve.Root)
	}
	if cfg.Resolve.ModulesDirectories != nil {
		t.Errorf("expected absent modulesDirectories to stay nil, got %v", cfg.Resolve.ModulesDirectories)
	}

	items := cfg.Externals.Items
	if len(items) != 3 {
		t.Fatalf("expected 3 externals, got %d", len(items))
	}
	if items[1].Kind != ExternalsPattern || !items[1].Pattern.MatchString("node:fs") {
		t.Errorf("item 1 = %+v, want pattern matching node:fs", items[1])
	}
	if items[2].Kind != ExternalsMap || len(items[2].Mapping) != 2 {
		t.Errorf("item 2 = %+v, want map of 2", items[2])
	}
}

func TestLoad_YML(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/yml", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Externals.Kind != ExternalsString || cfg.Externals.Value != "react" {
		t.Errorf("expected string externals react, got %+v", cfg.Externals)
	}
}

func TestLoad_YAMLBeforeJSON(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/priority", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Externals.Value != "from-yaml" {
		t.Errorf("expected yaml config to win, got %q", cfg.Externals.Value)
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		fixture string
		want    string
	}{
		{"fixtures/config/yaml", "/project/webpack.config.yaml"},
		{"fixtures/config/yml", "/project/webpack.config.yml"},
		{"fixtures/config/json", "/project/webpack.config.json"},
		{"fixtures/config/priority", "/project/webpack.config.yaml"},
		{"fixtures/config/none", ""},
	}

	for _, tt := range tests {
		t.Run(tt.fixture, func(t *testing.T) {
			mfs := testutil.NewFixtureFS(t, tt.fixture, "/project")
			if got := Find(mfs, "/project"); got != tt.want {
				t.Errorf("Find() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoad_NotFound(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/none", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config when not found, got %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fixture string
		wantErr error
	}{
		{"unparsable yaml", "fixtures/config/broken", ErrInvalidConfig},
		{"invalid pattern", "fixtures/config/badpattern", ErrInvalidExternals},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mfs := testutil.NewFixtureFS(t, tt.fixture, "/project")
			_, err := Load(mfs, "/project")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestOrEmpty(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetDebug(true)
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr)
		logger.SetDebug(false)
	})

	tests := []struct {
		name    string
		file    string
		wantLog string
	}{
		{"fixtures/config/none", "/project/index.js", ""},
		{"fixtures/config/broken", "/project/index.js", "warning: ignoring build config for /project/index.js"},
		{"fixtures/config/badpattern", "/project/index.js", "warning: ignoring build config for /project/index.js"},
		{"fixtures/config/none", "/elsewhere/index.js", "debug: using empty config for /elsewhere/index.js"},
	}

	for _, tt := range tests {
		t.Run(tt.name+tt.file, func(t *testing.T) {
			buf.Reset()
			mfs := testutil.NewFixtureFS(t, tt.name, "/project")

			cfg, err := LoadForFile(mfs, tt.file)
			got := OrEmpty(cfg, err, tt.file)
			if got == nil {
				t.Fatal("expected empty config, got nil")
			}
			if got.Resolve.Alias != nil || !got.Externals.IsZero() || got.Resolve.Root != "" {
				t.Errorf("expected every field absent, got %+v", got)
			}
			if tt.wantLog == "" && buf.Len() != 0 {
				t.Errorf("expected no log output, got %q", buf.String())
			}
			if !strings.Contains(buf.String(), tt.wantLog) {
				t.Errorf("expected log %q, got %q", tt.wantLog, buf.String())
			}
		})
	}
}

func TestOrEmpty_KeepsLoadedConfig(t *testing.T) {
	cfg := &BuildConfig{Externals: String("react")}
	if got := OrEmpty(cfg, nil, "/project/index.js"); got != cfg {
		t.Errorf("expected the loaded config back, got %+v", got)
	}
}

func TestLoadForFile(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/yml", "/project")
	mfs.AddFile("/project/src/app/main.js", "", 0644)

	cfg, err := LoadForFile(mfs, "/project/src/app/main.js")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Externals.Value != "react" {
		t.Errorf("expected config from enclosing package, got %+v", cfg)
	}

	_, err = LoadForFile(mfs, "/elsewhere/file.js")
	if !errors.Is(err, pkgroot.ErrNotFound) {
		t.Errorf("expected pkgroot.ErrNotFound, got %v", err)
	}
}

func TestCache_LoadsEachRootOnce(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/yml", "/one")
	testutil.AddFixture(t, mfs, "fixtures/config/priority", "/two")

	cache := NewCache()

	var wg sync.WaitGroup
	for _, file := range []string{"/one/a.js", "/one/b/c.js", "/two/a.js", "/two/x/y/z.js"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.LoadForFile(mfs, file); err != nil {
				t.Errorf("LoadForFile(%s): %v", file, err)
			}
		}()
	}
	wg.Wait()

	one, _ := cache.LoadForFile(mfs, "/one/a.js")
	nested, _ := cache.LoadForFile(mfs, "/one/b/c.js")
	if one == nil || one != nested {
		t.Errorf("expected files in one package to share a cached config, got %p and %p", one, nested)
	}

	cfg, err := cache.LoadForFile(mfs, "/two/a.js")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Externals.Value != "from-yaml" {
		t.Errorf("expected /two config, got %+v", cfg.Externals)
	}
}

func TestCache_CachesErrors(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/broken", "/project")
	cache := NewCache()

	_, first := cache.LoadForFile(mfs, "/project/index.js")
	_, second := cache.LoadForFile(mfs, "/project/index.js")
	if !errors.Is(first, ErrInvalidConfig) || !errors.Is(second, ErrInvalidConfig) {
		t.Errorf("expected cached ErrInvalidConfig, got %v then %v", first, second)
	}
}
