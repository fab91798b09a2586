package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"roadmate-backend/internal/models"
	"roadmate-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	maxPhotoBytes = 512 << 10
	maxPhotoBatch = 5
)

// PhotoUploader is the service surface behind the upload endpoint.
type PhotoUploader interface {
	Upload(ctx context.Context, subjectID uuid.UUID, class models.PhotoClass, photos [][]byte) ([]string, error)
}

// PhotoHandler handles photo-upload HTTP requests
type PhotoHandler struct {
	photos PhotoUploader
	gate   Gate
}

// NewPhotoHandler creates a new photo handler
func NewPhotoHandler(photos PhotoUploader, gate Gate) *PhotoHandler {
	return &PhotoHandler{photos: photos, gate: gate}
}

// Upload handles POST /upload_photo?subject_id=&photo_type=
// Accepts 1 to 5 JPEG parts of at most 512 KiB each in the "photos" field.
func (h *PhotoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	identity, err := h.gate.Authenticate(r)
	if err != nil {
		respondUnauthorized(w)
		return
	}

	subjectID, err := uuid.Parse(r.URL.Query().Get("subject_id"))
	if err != nil {
		respondDetail(w, "Wrong subject_id")
		return
	}
	class, ok := models.ParsePhotoClass(r.URL.Query().Get("photo_type"))
	if !ok {
		respondDetail(w, "photo_type must be user or profile")
		return
	}

	if err := r.ParseMultipartForm(maxPhotoBatch * maxPhotoBytes); err != nil {
		respondDetail(w, "Invalid multipart body")
		return
	}
	files := r.MultipartForm.File["photos"]
	if len(files) == 0 {
		respondDetail(w, "photos field is required")
		return
	}
	if len(files) > maxPhotoBatch {
		respondDetail(w, "You cannot upload more than 5 photos at once")
		return
	}

	photos := make([][]byte, 0, len(files))
	for _, header := range files {
		if header.Size > maxPhotoBytes {
			respondDetail(w, "Photo exceeds the 512 KiB limit")
			return
		}
		file, err := header.Open()
		if err != nil {
			respondDetail(w, "Invalid multipart body")
			return
		}
		data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes))
		file.Close()
		if err != nil {
			respondDetail(w, "Invalid multipart body")
			return
		}
		photos = append(photos, data)
	}

	urls, err := h.photos.Upload(r.Context(), subjectID, class, photos)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTooManyPhotos):
			quota, _ := repository.Quota(class)
			log.Debug().
				Str("subject_id", subjectID.String()).
				Int("quota", quota).
				Msg("Photo quota exceeded")
			respondDetail(w, "Photo limit for this subject is exceeded")
		case errors.Is(err, repository.ErrUnknownSubject):
			respondDetail(w, "Wrong subject_id")
		default:
			log.Error().
				Err(err).
				Str("subject_id", subjectID.String()).
				Str("caller_id", identity.UserID.String()).
				Msg("Failed to upload photos")
			respondDetail(w, "Operation failed")
		}
		return
	}

	respondJSON(w, map[string]any{"status": true, "photo_url": urls})
}
