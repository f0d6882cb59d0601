package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var ErrMissingDSN = errors.New("database url is empty")

const schema = `
CREATE TABLE IF NOT EXISTS dogs (
	id       TEXT PRIMARY KEY,
	img      TEXT NOT NULL DEFAULT '',
	name     TEXT NOT NULL,
	age      INTEGER NOT NULL CHECK (age >= 0),
	zip_code TEXT NOT NULL,
	breed    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS dogs_breed_idx ON dogs (breed);
CREATE INDEX IF NOT EXISTS dogs_zip_code_idx ON dogs (zip_code);

CREATE TABLE IF NOT EXISTS locations (
	zip_code  TEXT PRIMARY KEY,
	latitude  DOUBLE PRECISION NOT NULL,
	longitude DOUBLE PRECISION NOT NULL,
	city      TEXT NOT NULL,
	state     TEXT NOT NULL,
	county    TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS locations_lat_lon_idx ON locations (latitude, longitude);
`

// Connect opens a pgx backed *sql.DB and checks it answers.
func Connect(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, ErrMissingDSN
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the sandbox tables when they are missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// IsEmpty reports whether the dogs table has no rows yet.
func IsEmpty(ctx context.Context, db *sql.DB) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM dogs)`).Scan(&exists)
	return !exists, err
}
