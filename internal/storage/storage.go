package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("file not found")

// FileStore is the single seam between the upload endpoint and whichever
// backend a deployment picks: local disk, the database blob table, or S3.
type FileStore interface {
	Save(ctx context.Context, name, contentType string, data []byte) (string, error)
	Open(ctx context.Context, name string) (io.ReadCloser, string, error)
}

// NewFileName keeps the historical file_<timestamp> prefix and adds a short
// random suffix so two uploads in the same millisecond cannot collide.
func NewFileName(original string) string {
	ext := filepath.Ext(original)
	return fmt.Sprintf("file_%d_%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
}
