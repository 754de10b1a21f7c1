// Package storage persists uploaded media on the local filesystem, one
// directory per content category.
package storage

import (
	"io"
	"os"
	"path/filepath"
)

// localStorage implements file storage on the local filesystem
type localStorage struct {
	basePath string
}

// NewLocalStorage creates a new localStorage instance rooted at basePath
func NewLocalStorage(basePath string) *localStorage {
	return &localStorage{
		basePath: basePath,
	}
}

// filePath builds the full path of a stored file from its category and name
func (s *localStorage) filePath(category, name string) string {
	return filepath.Join(s.basePath, category, name)
}

// Create creates a new file and returns a WriteCloser
func (s *localStorage) Create(category, name string) (io.WriteCloser, error) {
	path := s.filePath(category, name)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	return os.Create(path)
}

// Open opens a file for reading and returns a ReadCloser
func (s *localStorage) Open(category, name string) (io.ReadCloser, error) {
	return os.Open(s.filePath(category, name))
}

// OpenFile opens a file and returns *os.File for use with http.ServeContent
func (s *localStorage) OpenFile(category, name string) (*os.File, error) {
	return os.Open(s.filePath(category, name))
}

// Delete removes a file
func (s *localStorage) Delete(category, name string) error {
	return os.Remove(s.filePath(category, name))
}
