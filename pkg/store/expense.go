package store

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/haibun/haibun/pkg/models"
)

// ExpenseStore persists expenses and expense categories.
type ExpenseStore struct {
	db *DB
}

// NewExpenseStore creates a new expense store.
func NewExpenseStore(db *DB) *ExpenseStore {
	return &ExpenseStore{db: db}
}

const expenseColumns = `expense.expense_id, expense.date,
	coalesce(account.account_name, ''), expense.amount,
	coalesce(expense_category.category_name, ''), expense.note
	FROM expense
	LEFT JOIN expense_category ON expense.category_id = expense_category.category_id
	LEFT JOIN account ON expense.account_id = account.account_id`

// List returns every expense ordered by date ascending.
func (s *ExpenseStore) List(ctx context.Context) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+expenseColumns+` ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()
	return scanExpenses(rows)
}

// ListLast returns the most recent n expenses, still ordered oldest first so
// the table reads top to bottom.
func (s *ExpenseStore) ListLast(ctx context.Context, n int64) ([]models.Expense, error) {
	q := `WITH t AS (SELECT ` + expenseColumns + ` ORDER BY date DESC LIMIT $1)
	      SELECT * FROM t ORDER BY date ASC`
	rows, err := s.db.QueryContext(ctx, q, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query last expenses: %w", err)
	}
	defer rows.Close()
	return scanExpenses(rows)
}

// Add inserts a new expense.
func (s *ExpenseStore) Add(ctx context.Context, date time.Time, accountID int64, amount decimal.Decimal, categoryID int64, note string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO expense (date, account_id, amount, category_id, note)
		 VALUES ($1, $2, $3, $4, $5)`,
		date, accountID, amount.String(), categoryID, note,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	return nil
}

// Categories returns all expense categories.
func (s *ExpenseStore) Categories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT category_id, category_name FROM expense_category`)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan expense category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expense categories: %w", err)
	}
	return categories, nil
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanExpenses(rows rowScanner) ([]models.Expense, error) {
	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		var amountStr string
		if err := rows.Scan(&e.ID, &e.Date, &e.Account, &amountStr, &e.Category, &e.Note); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse expense amount: %w", err)
		}
		e.Amount = amount
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expenses: %w", err)
	}
	return expenses, nil
}
