// Package store persists deals, calculator defaults and generated reports.
// The database is primary; deal persistence falls back to local JSON files
// when no DATABASE_URL is configured, so the calculator workflow works in
// local development.
package store

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	pool *pgxpool.Pool
	once sync.Once
)

// InitDB initializes the shared connection pool from DATABASE_URL.
func InitDB(ctx context.Context) error {
	var err error
	once.Do(func() {
		dbURL := os.Getenv("DATABASE_URL")
		if dbURL == "" {
			err = fmt.Errorf("DATABASE_URL environment variable not set")
			return
		}

		config, parseErr := pgxpool.ParseConfig(dbURL)
		if parseErr != nil {
			err = fmt.Errorf("failed to parse database config: %w", parseErr)
			return
		}

		pool, err = pgxpool.NewWithConfig(ctx, config)
	})
	return err
}

// GetPool returns the shared pool, nil when the database is not configured.
func GetPool() *pgxpool.Pool {
	return pool
}

// Close shuts the pool down.
func Close() {
	if pool != nil {
		pool.Close()
	}
}
