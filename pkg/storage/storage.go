// Package storage defines the backend abstraction the upload path builder
// checks generated paths against, plus a disk implementation and an in-memory
// one for tests. Backend failures are returned unchanged to callers.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned when opening or deleting a file that does not exist.
var ErrNotFound = errors.New("file not found")

// Storage is the minimal backend surface needed for NanoID upload paths.
// Names are slash-separated paths relative to the backend root.
type Storage interface {
	// Exists reports whether a file is stored under the given name.
	Exists(ctx context.Context, name string) (bool, error)

	// Save stores the contents of r under the given name, creating parent
	// directories as needed and replacing any existing file.
	Save(ctx context.Context, name string, r io.Reader) error

	// Open returns a reader for the named file. The caller closes it.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Delete removes the named file.
	Delete(ctx context.Context, name string) error
}
