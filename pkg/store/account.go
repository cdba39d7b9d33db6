package store

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/haibun/haibun/pkg/models"
)

// AccountStore persists accounts and their current values.
type AccountStore struct {
	db *DB
}

// NewAccountStore creates a new account store.
func NewAccountStore(db *DB) *AccountStore {
	return &AccountStore{db: db}
}

// List returns all accounts ordered by id.
func (s *AccountStore) List(ctx context.Context) ([]models.Account, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT account_id, account_name FROM account ORDER BY account_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}
	return accounts, nil
}

// Values returns every account with its current value, 0 when no value has
// been recorded yet.
func (s *AccountStore) Values(ctx context.Context) ([]models.AccountValue, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT account.account_id, account_name, coalesce(account_value.account_value, 0)
		 FROM account
		 LEFT JOIN account_value ON account.account_id = account_value.account_id
		 ORDER BY account_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query account values: %w", err)
	}
	defer rows.Close()

	var values []models.AccountValue
	for rows.Next() {
		var v models.AccountValue
		var valueStr string
		if err := rows.Scan(&v.AccountID, &v.Name, &valueStr); err != nil {
			return nil, fmt.Errorf("failed to scan account value: %w", err)
		}
		value, err := decimal.NewFromString(valueStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse account value: %w", err)
		}
		v.Value = value
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read account values: %w", err)
	}
	return values, nil
}

// UpdateValue sets the current value of an account and reports how many rows
// were touched, so a caller can detect an account with no value row yet.
func (s *AccountStore) UpdateValue(ctx context.Context, value decimal.Decimal, accountID int64) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE account_value SET account_value = $1 WHERE account_id = $2`,
		value.String(), accountID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update account value: %w", err)
	}
	updated, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read update result: %w", err)
	}
	return updated, nil
}
