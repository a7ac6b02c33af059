/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package fs

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
)

// AFSFileSystem implements FileSystem on an afs storage service, so
// resolution can run against a checkout held in object storage.
// Absolute paths are appended to BaseURL, e.g. "s3://bucket/checkout".
type AFSFileSystem struct {
	service afs.Service
	baseURL string
}

// NewAFSFileSystem creates a FileSystem rooted at baseURL.
func NewAFSFileSystem(service afs.Service, baseURL string) *AFSFileSystem {
	return &AFSFileSystem{service: service, baseURL: strings.TrimSuffix(baseURL, "/")}
}

// Open returns the OS filesystem for an empty storageURL, and an afs-backed
// one rooted at storageURL otherwise.
func Open(storageURL string) FileSystem {
	if storageURL == "" {
		return NewOSFileSystem()
	}
	return NewAFSFileSystem(afs.New(), storageURL)
}

// URL returns the storage URL of the absolute path name.
func (f *AFSFileSystem) URL(name string) string {
	p := filepath.ToSlash(name)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return f.baseURL + p
}

// ReadFile downloads the object at name.
func (f *AFSFileSystem) ReadFile(name string) ([]byte, error) {
	return f.service.DownloadWithURL(context.Background(), f.URL(name))
}

// Stat returns the storage object at name. Missing objects yield an error
// wrapping fs.ErrNotExist.
func (f *AFSFileSystem) Stat(name string) (fs.FileInfo, error) {
	URL := f.URL(name)
	ctx := context.Background()

	exists, err := f.service.Exists(ctx, URL)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%s: %w", URL, fs.ErrNotExist)
	}

	object, err := f.service.Object(ctx, URL)
	if err != nil {
		return nil, err
	}
	return object, nil
}
