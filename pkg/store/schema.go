package store

import (
	"context"
	"fmt"
)

// schema holds the table definitions, applied in order at startup. There is
// deliberately no uniqueness constraint on portfolio: duplicate prevention
// is the importer's check-before-insert, so direct writes from elsewhere can
// introduce rows the importer would consider duplicates.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS account (
		account_id   SERIAL PRIMARY KEY,
		account_name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS account_value (
		account_id    INTEGER NOT NULL REFERENCES account (account_id),
		account_value NUMERIC NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS expense_category (
		category_id   SERIAL PRIMARY KEY,
		category_name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS expense (
		expense_id  SERIAL PRIMARY KEY,
		date        DATE NOT NULL,
		account_id  INTEGER REFERENCES account (account_id),
		amount      NUMERIC NOT NULL,
		category_id INTEGER REFERENCES expense_category (category_id),
		note        TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS subscription (
		subscription_id    SERIAL PRIMARY KEY,
		subscription_name  TEXT NOT NULL,
		category_id        INTEGER REFERENCES expense_category (category_id),
		subscription_price NUMERIC NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS portfolio (
		portfolio_id SERIAL PRIMARY KEY,
		date         DATE NOT NULL,
		item         TEXT NOT NULL,
		value        NUMERIC NOT NULL
	)`,
}

// EnsureSchema creates any missing tables.
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
