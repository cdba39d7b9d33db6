package store

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/haibun/haibun/pkg/models"
)

// SubscriptionStore persists recurring payments.
type SubscriptionStore struct {
	db *DB
}

// NewSubscriptionStore creates a new subscription store.
func NewSubscriptionStore(db *DB) *SubscriptionStore {
	return &SubscriptionStore{db: db}
}

// List returns every subscription with its category name.
func (s *SubscriptionStore) List(ctx context.Context) ([]models.Subscription, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT subscription.subscription_name, expense_category.category_name,
		        subscription.subscription_price
		 FROM subscription
		 JOIN expense_category ON subscription.category_id = expense_category.category_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []models.Subscription
	for rows.Next() {
		var sub models.Subscription
		var priceStr string
		if err := rows.Scan(&sub.Name, &sub.Category, &priceStr); err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse subscription price: %w", err)
		}
		sub.Price = price
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read subscriptions: %w", err)
	}
	return subs, nil
}

// Add inserts a new subscription.
func (s *SubscriptionStore) Add(ctx context.Context, name string, categoryID int64, price decimal.Decimal) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO subscription (subscription_name, category_id, subscription_price)
		 VALUES ($1, $2, $3)`,
		name, categoryID, price.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert subscription: %w", err)
	}
	return nil
}
