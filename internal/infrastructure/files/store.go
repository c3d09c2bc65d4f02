// Package files stores uploaded prescription files on disk.
//
// Each file is written under the configured directory with a uuid-derived
// key, so the storage key recorded on the order remains valid however often
// the original filename repeats.
package files

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// extensionsByMIME maps accepted MIME types to on-disk extensions.
var extensionsByMIME = map[string]string{
	"image/jpeg":      ".jpg",
	"image/jpg":       ".jpg",
	"image/png":       ".png",
	"application/pdf": ".pdf",
}

// Store writes uploads to a directory on the local filesystem.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save writes the file contents and returns the storage key. The key is
// what gets persisted on the uploaded-file record and on the order.
func (s *Store) Save(id, mimeType string, r io.Reader) (string, error) {
	ext, ok := extensionsByMIME[mimeType]
	if !ok {
		return "", fmt.Errorf("unsupported MIME type %q", mimeType)
	}
	if id == "" {
		id = uuid.NewString()
	}

	key := "prescriptions/" + id + ext
	path := filepath.Join(s.dir, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create prescriptions dir: %w", err)
	}

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		// Remove the partial file so a retry starts clean.
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return key, nil
}

// Open returns a reader for a previously stored file.
func (s *Store) Open(key string) (io.ReadCloser, error) {
	if strings.Contains(key, "..") {
		return nil, fmt.Errorf("invalid storage key %q", key)
	}
	return os.Open(filepath.Join(s.dir, filepath.FromSlash(key)))
}

// Remove deletes a stored file.
func (s *Store) Remove(key string) error {
	if strings.Contains(key, "..") {
		return fmt.Errorf("invalid storage key %q", key)
	}
	return os.Remove(filepath.Join(s.dir, filepath.FromSlash(key)))
}
