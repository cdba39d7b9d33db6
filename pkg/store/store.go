// Package store is the Postgres persistence layer. Every query runs against
// a shared *sql.DB pool; each logical operation acquires and releases a
// connection on its own, there are no multi-statement transactions.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// DB wraps the pooled database connection.
type DB struct {
	*sql.DB
}

// Open connects to Postgres and verifies the connection.
// connString is in the usual "host=... port=... dbname=..." key/value form.
func Open(connString string) (*DB, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}

// Close closes the underlying pool.
func (db *DB) Close() error {
	return db.DB.Close()
}
