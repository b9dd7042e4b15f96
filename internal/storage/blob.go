package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/dkotelnikov/shop-backend/internal/models"
	"github.com/dkotelnikov/shop-backend/internal/repo"
)

// BlobStore keeps uploads in the primary database, the way the hosted
// revisions kept them in a GridFS bucket.
type BlobStore struct {
	Repo    *repo.GormRepo
	BaseURL string
}

func (s *BlobStore) Save(ctx context.Context, name, contentType string, data []byte) (string, error) {
	file := models.UploadedFile{
		Name:        name,
		ContentType: contentType,
		Data:        data,
	}
	if err := s.Repo.CreateFile(ctx, &file); err != nil {
		return "", fmt.Errorf("blob store: %w", err)
	}
	return s.BaseURL + "/images/" + name, nil
}

func (s *BlobStore) Open(ctx context.Context, name string) (io.ReadCloser, string, error) {
	file, err := s.Repo.FileByName(ctx, name)
	if err != nil {
		return nil, "", fmt.Errorf("blob store: %w", err)
	}
	if file == nil {
		return nil, "", ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(file.Data)), file.ContentType, nil
}
