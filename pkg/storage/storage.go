// Package storage manages uploaded PDF files on local disk, laid out as
// {root}/{tenant_id}/{document_id}.pdf.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrTooLarge is returned when an upload exceeds the configured size cap.
var ErrTooLarge = errors.New("document exceeds maximum allowed size")

// Store writes and removes uploaded documents.
type Store struct {
	root     string
	maxBytes int64
}

// New creates the storage root if needed.
func New(root string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create storage root %s: %w", root, err)
	}
	return &Store{root: root, maxBytes: maxBytes}, nil
}

// Path returns the on-disk location for a document.
func (s *Store) Path(tenantID, documentID string) string {
	return filepath.Join(s.root, tenantID, documentID+".pdf")
}

// Save streams an upload to disk. declaredSize is checked before any byte is
// written; the copy is also capped in case the declared size lied.
func (s *Store) Save(tenantID, documentID string, r io.Reader, declaredSize int64) (string, int64, error) {
	if declaredSize > s.maxBytes {
		return "", 0, ErrTooLarge
	}

	dir := filepath.Join(s.root, tenantID)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", 0, fmt.Errorf("failed to create tenant directory: %w", err)
	}

	path := s.Path(tenantID, documentID)
	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create file %s: %w", path, err)
	}

	// +1 so a stream that exactly fills the cap is distinguishable from one
	// that overflows it.
	n, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", 0, fmt.Errorf("failed to write file %s: %w", path, err)
	}
	if n > s.maxBytes {
		_ = os.Remove(path)
		return "", 0, ErrTooLarge
	}

	return path, n, nil
}

// Remove deletes one stored document. Removing a missing file is not an error.
func (s *Store) Remove(tenantID, documentID string) error {
	return s.RemovePath(s.Path(tenantID, documentID))
}

// RemovePath deletes a stored file by its recorded path. Documents carried
// over between build versions share a file, so callers pass the path from
// the document row rather than deriving it.
func (s *Store) RemovePath(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove document file: %w", err)
	}
	return nil
}

// RemoveTenant deletes a tenant's entire upload directory.
func (s *Store) RemoveTenant(tenantID string) error {
	if err := os.RemoveAll(filepath.Join(s.root, tenantID)); err != nil {
		return fmt.Errorf("failed to remove tenant directory: %w", err)
	}
	return nil
}
