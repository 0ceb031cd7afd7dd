package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const schema = `
CREATE TABLE IF NOT EXISTS schools (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
	id           TEXT PRIMARY KEY,
	school_id    TEXT NOT NULL,
	created_at   TIMESTAMPTZ NULL,
	total_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
	items        JSONB NOT NULL DEFAULT '[]'
);

CREATE TABLE IF NOT EXISTS batches (
	id        TEXT PRIMARY KEY,
	school_id TEXT NOT NULL,
	items     JSONB NOT NULL DEFAULT '[]'
);

CREATE INDEX IF NOT EXISTS orders_school_id_idx ON orders (school_id);
CREATE INDEX IF NOT EXISTS batches_school_id_idx ON batches (school_id);
`

// Connect opens the Postgres pool through the pgx driver, checks it answers and makes sure
// the tables exist.
func Connect(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, errors.New("postgres DSN is empty")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return db, nil
}
