package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaStatements are ordered so that referenced tables are created before
// the tables holding foreign keys to them.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id UUID NOT NULL UNIQUE PRIMARY KEY,
		nickname VARCHAR(35) NULL UNIQUE,
		first_name VARCHAR(100) NOT NULL,
		reg_time TIMESTAMP NOT NULL,
		born_date DATE,
		gender VARCHAR(6),
		hashed_password VARCHAR(128)
	)`,
	`CREATE TABLE IF NOT EXISTS profiles (
		profile_id UUID NOT NULL UNIQUE PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
		status BOOL DEFAULT true,
		desired_gender VARCHAR(6),
		min_age SMALLINT,
		max_age SMALLINT,
		type SMALLINT,
		vehicle_type VARCHAR(8)
	)`,
	`CREATE TABLE IF NOT EXISTS user_rating (
		rating_id UUID NOT NULL UNIQUE PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
		rate INT DEFAULT 0,
		rate_count INT DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		session_id UUID NOT NULL UNIQUE PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
		device_id VARCHAR(32) NOT NULL,
		start_time TIMESTAMP NOT NULL,
		token VARCHAR(100) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS user_photos (
		photo_id UUID NOT NULL UNIQUE PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users (user_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS profile_photos (
		photo_id UUID NOT NULL UNIQUE PRIMARY KEY,
		profile_id UUID NOT NULL REFERENCES profiles (profile_id) ON DELETE CASCADE
	)`,
}

// EnsureSchema creates every table if absent, inside one transaction. Runs
// once at startup; a failure here means the process must not serve requests.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	return inTx(ctx, pool, func(tx pgx.Tx) error {
		for _, stmt := range schemaStatements {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("failed to ensure schema: %w", err)
			}
		}
		return nil
	})
}
