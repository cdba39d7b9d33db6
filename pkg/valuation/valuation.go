// Package valuation computes the latest-snapshot view: every item held at
// the maximum stored date, its share of that date's total, and the total
// itself. "Latest" is the maximum date value, not insertion order.
package valuation

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/haibun/haibun/pkg/models"
)

// ErrEmptySnapshot means no entries are stored for any date. That is the
// expected "nothing to show" condition, not a failure of the store.
var ErrEmptySnapshot = errors.New("no portfolio entries stored")

// Store is the read capability the aggregator needs.
type Store interface {
	LatestEntries(ctx context.Context) ([]models.PortfolioEntry, error)
}

// Item is one ranked row of the snapshot view.
type Item struct {
	ID         int64
	Name       string
	Value      decimal.Decimal
	Proportion string
}

// Snapshot is the valuation of the latest stored date.
type Snapshot struct {
	Date  time.Time
	Items []Item
	Total decimal.Decimal
}

// Rows returns the ranked items followed by the synthetic total row: fixed
// id 0, label "Total", empty proportion. The total is appended, never
// interleaved.
func (s *Snapshot) Rows() []Item {
	rows := make([]Item, 0, len(s.Items)+1)
	rows = append(rows, s.Items...)
	rows = append(rows, Item{ID: 0, Name: "Total", Value: s.Total})
	return rows
}

// Aggregator reads the store at display time, independent of ingestion.
type Aggregator struct {
	store Store
}

// New creates an aggregator over the given store.
func New(store Store) *Aggregator {
	return &Aggregator{store: store}
}

var hundred = decimal.NewFromInt(100)

// Latest builds the snapshot for the maximum stored date: items ordered by
// value descending, each with its percentage share of the total formatted to
// two decimals with a trailing percent marker.
func (a *Aggregator) Latest(ctx context.Context) (*Snapshot, error) {
	entries, err := a.store.LatestEntries(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrEmptySnapshot
	}

	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Value)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value.GreaterThan(entries[j].Value)
	})

	snapshot := &Snapshot{
		Date:  entries[0].Date,
		Items: make([]Item, 0, len(entries)),
		Total: total,
	}
	for _, e := range entries {
		item := Item{ID: e.ID, Name: e.Item, Value: e.Value}
		if !total.IsZero() {
			item.Proportion = e.Value.Mul(hundred).Div(total).StringFixed(2) + "%"
		}
		snapshot.Items = append(snapshot.Items, item)
	}

	return snapshot, nil
}
