package services

import (
	"context"

	"roadmate-backend/internal/models"
	"roadmate-backend/internal/repository"
	"roadmate-backend/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// maxBatchSize caps how many photos one upload request may carry.
const maxBatchSize = 5

// PhotoStore is the photo-store surface the service needs.
type PhotoStore interface {
	AddPhotos(ctx context.Context, subjectID uuid.UUID, photoIDs []uuid.UUID, class models.PhotoClass) error
}

// PhotoService handles photo-upload business logic
type PhotoService struct {
	photos PhotoStore
	writer storage.Writer
}

// NewPhotoService creates a new photo service
func NewPhotoService(photos PhotoStore, writer storage.Writer) *PhotoService {
	return &PhotoService{photos: photos, writer: writer}
}

// Upload records the batch against the subject's quota and returns the public
// URLs. The quota transaction commits before any bytes are written; byte
// persistence then runs in the background so the response does not wait on
// storage I/O. A crash between commit and write leaves a dangling reference,
// which is accepted.
func (s *PhotoService) Upload(ctx context.Context, subjectID uuid.UUID, class models.PhotoClass, photos [][]byte) ([]string, error) {
	if len(photos) == 0 || len(photos) > maxBatchSize {
		return nil, repository.ErrTooManyPhotos
	}

	photoIDs := make([]uuid.UUID, len(photos))
	for i := range photos {
		photoIDs[i] = uuid.New()
	}

	if err := s.photos.AddPhotos(ctx, subjectID, photoIDs, class); err != nil {
		return nil, err
	}

	for i, photoID := range photoIDs {
		go func(photoID uuid.UUID, data []byte) {
			if err := s.writer.Save(context.Background(), photoID, data); err != nil {
				log.Error().
					Err(err).
					Str("photo_id", photoID.String()).
					Str("subject_id", subjectID.String()).
					Msg("Failed to persist photo bytes")
			}
		}(photoID, photos[i])
	}

	urls := make([]string, len(photoIDs))
	for i, photoID := range photoIDs {
		urls[i] = s.writer.PublicURL(photoID)
	}
	return urls, nil
}
