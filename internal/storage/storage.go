// Package storage persists photo bytes after the quota transaction has
// committed and hands out the public URLs clients fetch them from.
package storage

import (
	"context"

	"github.com/google/uuid"
)

// Writer durably persists photo bytes under an identifier-addressed path.
type Writer interface {
	// Save writes the photo bytes. It runs after the database transaction
	// for the upload has committed, so a crash in between can leave a
	// dangling reference; that window is accepted.
	Save(ctx context.Context, photoID uuid.UUID, data []byte) error

	// PublicURL returns the client-facing URL for a stored photo, shaped
	// {domain}/{static_root}/{id}.jpg.
	PublicURL(photoID uuid.UUID) string
}
