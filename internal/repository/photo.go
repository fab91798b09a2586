package repository

import (
	"context"
	"errors"
	"fmt"

	"roadmate-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// photoStatements is the fixed statement pair and quota for one photo class.
// Classes map to prepared text here; class values never reach SQL as strings.
type photoStatements struct {
	countSQL  string
	insertSQL string
	quota     int
}

var photoClassStatements = map[models.PhotoClass]photoStatements{
	models.PhotoClassUser: {
		countSQL:  `SELECT COUNT(photo_id) FROM user_photos WHERE user_id = $1`,
		insertSQL: `INSERT INTO user_photos (photo_id, user_id) VALUES ($1, $2)`,
		quota:     5,
	},
	models.PhotoClassProfile: {
		countSQL:  `SELECT COUNT(photo_id) FROM profile_photos WHERE profile_id = $1`,
		insertSQL: `INSERT INTO profile_photos (photo_id, profile_id) VALUES ($1, $2)`,
		quota:     3,
	},
}

// quotaExceeded applies the photo-count policy: existing and new photos are
// counted together against the cap, so a batch that would cross it is
// rejected whole.
func quotaExceeded(existing, adding, quota int) bool {
	return existing+adding > quota
}

// Quota returns the photo cap for a class, or false for an unknown class.
func Quota(class models.PhotoClass) (int, bool) {
	stmts, ok := photoClassStatements[class]
	if !ok {
		return 0, false
	}
	return stmts.quota, true
}

// PhotoRepository handles database operations for photos
type PhotoRepository struct {
	db *pgxpool.Pool
}

// NewPhotoRepository creates a new photo repository
func NewPhotoRepository(db *pgxpool.Pool) *PhotoRepository {
	return &PhotoRepository{db: db}
}

// AddPhotos records a batch of photos for a subject under one class. The
// count and the inserts share one transaction: either the whole batch fits
// under the class quota and every row lands, or nothing is written.
func (r *PhotoRepository) AddPhotos(ctx context.Context, subjectID uuid.UUID, photoIDs []uuid.UUID, class models.PhotoClass) error {
	stmts, ok := photoClassStatements[class]
	if !ok {
		return fmt.Errorf("unknown photo class %q", class)
	}

	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		var existing int
		if err := tx.QueryRow(ctx, stmts.countSQL, subjectID).Scan(&existing); err != nil {
			return fmt.Errorf("failed to count photos: %w", err)
		}
		if quotaExceeded(existing, len(photoIDs), stmts.quota) {
			return ErrTooManyPhotos
		}
		for _, photoID := range photoIDs {
			if _, err := tx.Exec(ctx, stmts.insertSQL, photoID, subjectID); err != nil {
				return fmt.Errorf("failed to insert photo: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return ErrUnknownSubject
		}
		return err
	}
	return nil
}
