package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used everywhere: config, filenames,
// prompts and the store. No time component.
const DateLayout = "2006-01-02"

// PortfolioEntry is one persisted holding observation. Entries are
// append-only: once stored they are never updated or deleted, corrections
// are new rows on a later date.
type PortfolioEntry struct {
	ID    int64
	Date  time.Time
	Item  string
	Value decimal.Decimal
}

// Expense is an expense row joined with its account and category names.
type Expense struct {
	ID       int64
	Date     time.Time
	Account  string
	Amount   decimal.Decimal
	Category string
	Note     string
}

// Subscription is a recurring payment.
type Subscription struct {
	Name     string
	Category string
	Price    decimal.Decimal
}

// Account identifies a money account (bank, broker, cash).
type Account struct {
	ID   int64
	Name string
}

// AccountValue pairs an account with its current balance.
type AccountValue struct {
	AccountID int64
	Name      string
	Value     decimal.Decimal
}

// Category is an expense category.
type Category struct {
	ID   int64
	Name string
}
