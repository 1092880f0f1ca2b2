// Package store persists analysis snapshots to Postgres (Supabase in
// the hosted setup). Persistence is a convenience cache of past
// results: every entry point degrades to a logged no-op when the store
// is unconfigured, unreachable, or the table has not been created.
package store

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the process-wide database handle. It is constructed once at
// startup and passed by reference to whoever needs it; an unconfigured
// Store (empty URL) is valid and simply reports not Configured.
type Store struct {
	pool *pgxpool.Pool
}

// Open connects to the database at databaseURL. An empty URL returns an
// unconfigured Store rather than an error so the analyze path keeps
// working with zero storage.
func Open(ctx context.Context, databaseURL string) (*Store, error) {
	if databaseURL == "" {
		log.Printf("[STORE] no database URL configured, analyses will not be saved")
		return &Store{}, nil
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Configured reports whether a backing database was set up.
func (s *Store) Configured() bool {
	return s != nil && s.pool != nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
}
