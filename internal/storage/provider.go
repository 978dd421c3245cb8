// Package storage defines read-only access to catalog resources.
package storage

import (
	"io"
	"io/fs"
)

// Provider resolves resource-relative paths to readable catalog files.
type Provider interface {
	// Open returns a reader for the resource at path (relative to the root).
	// Callers must close it.
	Open(path string) (io.ReadCloser, error)
	// Stat returns file info for the resource at path.
	Stat(path string) (fs.FileInfo, error)
	// Resolve returns the absolute location of path, rejecting escapes.
	Resolve(path string) (string, error)
}
