package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskWriter stores photos as {dir}/{id}.jpg on the local filesystem.
type DiskWriter struct {
	dir    string
	domain string
}

// NewDiskWriter creates the static directory if absent.
func NewDiskWriter(dir, domain string) (*DiskWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create static directory: %w", err)
	}
	return &DiskWriter{dir: dir, domain: domain}, nil
}

// Save writes the photo bytes to disk.
func (w *DiskWriter) Save(_ context.Context, photoID uuid.UUID, data []byte) error {
	path := filepath.Join(w.dir, photoID.String()+".jpg")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write photo file: %w", err)
	}
	return nil
}

// PublicURL returns the URL a client uses to fetch the photo.
func (w *DiskWriter) PublicURL(photoID uuid.UUID) string {
	return fmt.Sprintf("%s/%s/%s.jpg", w.domain, filepath.ToSlash(w.dir), photoID)
}
