package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	apperrors "dealspace-backend/internal/errors"
)

// LocalStorage keeps objects as files below a root directory
type LocalStorage struct {
	root      string
	publicURL string
}

// NewLocalStorage creates the root directory if needed
func NewLocalStorage(root, publicURL string) (*LocalStorage, error) {
	if root == "" {
		return nil, apperrors.ErrStorageNotConfigured
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &LocalStorage{root: root, publicURL: strings.TrimRight(publicURL, "/")}, nil
}

// Root returns the directory objects are stored in
func (s *LocalStorage) Root() string {
	return s.root
}

func (s *LocalStorage) filePath(key string) (string, string, error) {
	cleaned, err := cleanKey(key)
	if err != nil {
		return "", "", err
	}
	return cleaned, filepath.Join(s.root, filepath.FromSlash(cleaned)), nil
}

// Put writes the object, replacing an existing one
func (s *LocalStorage) Put(_ context.Context, key string, body io.Reader, _ int64, _ string) error {
	_, full, err := s.filePath(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(full), ".upload-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := io.Copy(tmp, body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write object: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close object: %w", err)
	}
	return os.Rename(tmp.Name(), full)
}

// Open returns a reader for the object
func (s *LocalStorage) Open(_ context.Context, key string) (io.ReadCloser, error) {
	_, full, err := s.filePath(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, apperrors.ErrObjectNotFound
	}
	return f, err
}

// Delete removes the object
func (s *LocalStorage) Delete(_ context.Context, key string) error {
	_, full, err := s.filePath(key)
	if err != nil {
		return err
	}
	err = os.Remove(full)
	if errors.Is(err, fs.ErrNotExist) {
		return apperrors.ErrObjectNotFound
	}
	return err
}

// URL returns the public address the object is served from
func (s *LocalStorage) URL(_ context.Context, key string) (string, error) {
	cleaned, _, err := s.filePath(key)
	if err != nil {
		return "", err
	}
	return s.publicURL + "/" + cleaned, nil
}
