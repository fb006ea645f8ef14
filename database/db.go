package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Sentinel errors mapped to HTTP statuses by the handlers.
var (
	ErrNotFound    = errors.New("not found")
	ErrInvalidDate = errors.New("expected YYYY-MM-DD")
)

type DB struct {
	Pool *pgxpool.Pool
}

func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	config.MaxConns = 25
	config.MinConns = 5
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established")
	return &DB{Pool: pool}, nil
}

// Health verifies the store is reachable. Backs the liveness endpoint.
func (db *DB) Health(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, "SELECT 1"); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}
	return nil
}

func (db *DB) Close() {
	db.Pool.Close()
	log.Println("Database connection closed")
}

// Scanner interfaces shared by the per-entity scan helpers. Satisfied by
// pgx.Row and pgx.Rows; tests can substitute fakes.

type rowScanner interface {
	Scan(dest ...interface{}) error
}

type rowsScanner interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}
