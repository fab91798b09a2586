package repository

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"roadmate-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionRepository handles database operations for sessions
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

// Authorize validates the presented credential and returns the session token
// for (user, device). If the pair already has a session its token is returned
// unchanged; otherwise the candidate session is inserted and its token
// returned. Credential check and insert-or-fetch share one transaction so two
// concurrent calls for the same device cannot both mint a token.
func (r *SessionRepository) Authorize(ctx context.Context, candidate *models.Session, hashedPassword string) (string, error) {
	var token string
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		var known bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM users WHERE user_id = $1 AND hashed_password = $2)`,
			candidate.UserID, hashedPassword,
		).Scan(&known)
		if err != nil {
			return fmt.Errorf("failed to check credentials: %w", err)
		}
		if !known {
			return ErrNotAuthorized
		}

		err = tx.QueryRow(ctx,
			`SELECT token FROM sessions WHERE user_id = $1 AND device_id = $2`,
			candidate.UserID, candidate.DeviceID,
		).Scan(&token)
		if err == nil {
			return nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to look up session: %w", err)
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO sessions (session_id, user_id, device_id, start_time, token) VALUES ($1, $2, $3, $4, $5)`,
			candidate.ID, candidate.UserID, candidate.DeviceID, candidate.StartTime, candidate.Token,
		)
		if err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}
		token = candidate.Token
		return nil
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

// IsAuthenticated compares the presented token with the stored one for
// (user, device). An absent session or a mismatch both come back as
// ErrUnauthenticated; the caller learns nothing about which field was wrong.
func (r *SessionRepository) IsAuthenticated(ctx context.Context, userID uuid.UUID, deviceID, token string) error {
	var stored string
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx,
			`SELECT token FROM sessions WHERE user_id = $1 AND device_id = $2`,
			userID, deviceID,
		).Scan(&stored)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUnauthenticated
		}
		return fmt.Errorf("failed to look up session: %w", err)
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(token)) != 1 {
		return ErrUnauthenticated
	}
	return nil
}
