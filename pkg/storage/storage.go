// Package storage exposes the object-storage surface the admin area
// uses for product images and banner media: upload bytes to a named
// bucket/path, get back a public URL. The disk implementation keeps
// buckets as directories under a root and serves them from a public
// base URL.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Uploader stores an object and returns its public URL.
type Uploader interface {
	Upload(bucket, name string, r io.Reader) (string, error)
}

// DiskStorage is an Uploader backed by the local filesystem.
type DiskStorage struct {
	root    string
	baseURL string
}

// NewDiskStorage creates a DiskStorage rooted at root, serving public
// URLs under baseURL.
func NewDiskStorage(root, baseURL string) *DiskStorage {
	return &DiskStorage{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Upload writes the object under root/bucket/name and returns its
// public URL. Parent directories are created as needed.
func (d *DiskStorage) Upload(bucket, name string, r io.Reader) (string, error) {
	// Bucket and object names come from the request; reduce both to a
	// single path segment so nothing escapes the storage root.
	bucket = filepath.Base(filepath.Clean(bucket))
	name = filepath.Base(filepath.Clean(name))
	dir := filepath.Join(d.root, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create bucket directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create object file %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write object %s: %w", path, err)
	}

	return fmt.Sprintf("%s/%s/%s", d.baseURL, bucket, name), nil
}
