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

// pgUniqueViolation is the Postgres error code for a unique-constraint hit.
const pgUniqueViolation = "23505"

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// IsNicknameAvailable reports whether no user holds the nickname under
// case-insensitive comparison.
func (r *UserRepository) IsNicknameAvailable(ctx context.Context, nickname string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(nickname) = LOWER($1))`
	var taken bool
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, query, nickname).Scan(&taken)
	})
	if err != nil {
		return false, fmt.Errorf("failed to check nickname: %w", err)
	}
	return !taken, nil
}

// Create inserts the user row together with its zero-valued rating row in one
// transaction; both land or neither does. Two registrations can race past the
// availability check, so a unique violation on nickname still comes back as
// ErrNicknameTaken here.
func (r *UserRepository) Create(ctx context.Context, user *models.User, ratingID uuid.UUID) error {
	query := `
		WITH new_user AS (
			INSERT INTO users (user_id, nickname, first_name, reg_time, born_date, gender, hashed_password)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		)
		INSERT INTO user_rating (rating_id, user_id) VALUES ($8, $1)
	`
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, query,
			user.ID, user.Nickname, user.FirstName, user.RegTime,
			user.BornDate, string(user.Gender), user.HashedPassword, ratingID,
		)
		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrNicknameTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}
