package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
)

type DiskStore struct {
	Dir     string
	BaseURL string
}

func (s *DiskStore) Save(ctx context.Context, name, contentType string, data []byte) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("disk store: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.Dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("disk store: %w", err)
	}
	return s.BaseURL + "/images/" + name, nil
}

func (s *DiskStore) Open(ctx context.Context, name string) (io.ReadCloser, string, error) {
	// filepath.Base strips any path traversal out of the requested name.
	f, err := os.Open(filepath.Join(s.Dir, filepath.Base(name)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("disk store: %w", err)
	}
	return f, mime.TypeByExtension(filepath.Ext(name)), nil
}
