package store

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/haibun/haibun/pkg/models"
)

// PortfolioStore persists portfolio entries. Entries are append-only; there
// is no update or delete path.
type PortfolioStore struct {
	db *DB
}

// NewPortfolioStore creates a new portfolio store.
func NewPortfolioStore(db *DB) *PortfolioStore {
	return &PortfolioStore{db: db}
}

// Exists reports whether an entry with exactly this (date, item, value)
// triple is already committed. The lookup goes to the database, not an
// in-run cache, so a re-run over a partially imported file sees earlier
// commits as duplicates.
func (s *PortfolioStore) Exists(ctx context.Context, date time.Time, item string, value decimal.Decimal) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) > 0 FROM portfolio WHERE date = $1 AND item = $2 AND value = $3`,
		date, item, value.String(),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check portfolio entry: %w", err)
	}
	return exists, nil
}

// Insert appends a new portfolio entry.
func (s *PortfolioStore) Insert(ctx context.Context, date time.Time, item string, value decimal.Decimal) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO portfolio (date, item, value) VALUES ($1, $2, $3)`,
		date, item, value.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert portfolio entry: %w", err)
	}
	return nil
}

// LatestEntries returns every entry dated at the maximum stored date,
// ordered by value descending. An empty store yields an empty slice.
func (s *PortfolioStore) LatestEntries(ctx context.Context) ([]models.PortfolioEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT portfolio_id, date, item, value
		 FROM portfolio
		 WHERE date = (SELECT max(date) FROM portfolio)
		 ORDER BY value DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest portfolio entries: %w", err)
	}
	defer rows.Close()

	var entries []models.PortfolioEntry
	for rows.Next() {
		var e models.PortfolioEntry
		var valueStr string
		if err := rows.Scan(&e.ID, &e.Date, &e.Item, &valueStr); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio entry: %w", err)
		}
		e.Value, err = decimal.NewFromString(valueStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored value: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read portfolio entries: %w", err)
	}
	return entries, nil
}
