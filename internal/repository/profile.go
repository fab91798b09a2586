package repository

import (
	"context"
	"errors"
	"fmt"

	"roadmate-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgForeignKeyViolation is the Postgres error code for a missing referenced row.
const pgForeignKeyViolation = "23503"

// ProfileRepository handles database operations for search profiles
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create inserts a profile unless the user already has one of the same type.
// The exists check and the insert share one transaction.
func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		var id string
		err := tx.QueryRow(ctx,
			`SELECT profile_id FROM profiles WHERE user_id = $1 AND type = $2`,
			profile.UserID, profile.Type.Code(),
		).Scan(&id)
		if err == nil {
			return ErrProfileExists
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to check profile: %w", err)
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO profiles (profile_id, user_id, status, desired_gender, min_age, max_age, type, vehicle_type)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			profile.ID, profile.UserID, profile.Active, string(profile.DesiredGender),
			profile.MinAge, profile.MaxAge, profile.Type.Code(), string(profile.VehicleType),
		)
		if err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}
		return nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return ErrUnknownUser
		}
		return err
	}
	return nil
}
