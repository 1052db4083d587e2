package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Disk stores files under a root directory on the local filesystem.
type Disk struct {
	root string
}

// NewDisk creates a disk backend rooted at the given directory, creating it
// if necessary.
func NewDisk(root string) (*Disk, error) {
	if root == "" {
		return nil, fmt.Errorf("storage root must not be empty")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root %s: %w", root, err)
	}
	return &Disk{root: root}, nil
}

// Root returns the backend's root directory.
func (d *Disk) Root() string { return d.root }

// Exists reports whether name is stored on disk.
func (d *Disk) Exists(ctx context.Context, name string) (bool, error) {
	path, err := d.abs(name)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Save writes r to disk under name. The contents go to a uniquely named
// temporary file first and are renamed into place, so concurrent saves of the
// same name never expose partial writes.
func (d *Disk) Save(ctx context.Context, name string, r io.Reader) error {
	path, err := d.abs(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(path), err)
	}

	tmpPath := path + ".tmp-" + uuid.NewString()
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}

// Open returns a reader for the named file.
func (d *Disk) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	path, err := d.abs(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, err
	}
	return f, nil
}

// Delete removes the named file.
func (d *Disk) Delete(ctx context.Context, name string) error {
	path, err := d.abs(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return err
	}
	return nil
}

// abs resolves name below the root, rejecting traversal outside of it.
func (d *Disk) abs(name string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid file name %q: outside storage root", name)
	}
	return filepath.Join(d.root, cleaned), nil
}
