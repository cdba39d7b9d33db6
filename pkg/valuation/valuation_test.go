package valuation

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haibun/haibun/pkg/models"
)

// fakeStore mimics the SQL contract: LatestEntries returns only the rows at
// the maximum stored date.
type fakeStore struct {
	entries []models.PortfolioEntry
	err     error
}

func (s *fakeStore) LatestEntries(context.Context) ([]models.PortfolioEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	var max time.Time
	for _, e := range s.entries {
		if e.Date.After(max) {
			max = e.Date
		}
	}
	var latest []models.PortfolioEntry
	for _, e := range s.entries {
		if e.Date.Equal(max) {
			latest = append(latest, e)
		}
	}
	return latest, nil
}

func day(s string) time.Time {
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLatestPicksMaxDate(t *testing.T) {
	store := &fakeStore{entries: []models.PortfolioEntry{
		{ID: 1, Date: day("2024-01-01"), Item: "AAPL", Value: dec("100.00")},
		{ID: 2, Date: day("2024-02-01"), Item: "AAPL", Value: dec("150.00")},
	}}

	snapshot, err := New(store).Latest(context.Background())
	require.NoError(t, err)

	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, "AAPL", snapshot.Items[0].Name)
	assert.Equal(t, "150.00", snapshot.Items[0].Value.StringFixed(2))
	assert.Equal(t, "100.00%", snapshot.Items[0].Proportion)
	assert.Equal(t, "150.00", snapshot.Total.StringFixed(2))
	assert.Equal(t, day("2024-02-01"), snapshot.Date)
}

func TestLatestOrdersByValueDescending(t *testing.T) {
	store := &fakeStore{entries: []models.PortfolioEntry{
		{ID: 1, Date: day("2024-02-01"), Item: "Small", Value: dec("10.00")},
		{ID: 2, Date: day("2024-02-01"), Item: "Big", Value: dec("500.00")},
		{ID: 3, Date: day("2024-02-01"), Item: "Mid", Value: dec("50.00")},
	}}

	snapshot, err := New(store).Latest(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"Big", "Mid", "Small"}, names)
}

func TestLatestProportionsSumToHundred(t *testing.T) {
	store := &fakeStore{entries: []models.PortfolioEntry{
		{ID: 1, Date: day("2024-02-01"), Item: "A", Value: dec("100.00")},
		{ID: 2, Date: day("2024-02-01"), Item: "B", Value: dec("100.00")},
		{ID: 3, Date: day("2024-02-01"), Item: "C", Value: dec("100.00")},
	}}

	snapshot, err := New(store).Latest(context.Background())
	require.NoError(t, err)

	var sum float64
	for _, item := range snapshot.Items {
		p, err := strconv.ParseFloat(strings.TrimSuffix(item.Proportion, "%"), 64)
		require.NoError(t, err)
		sum += p
	}
	assert.InDelta(t, 100.0, sum, 0.02, "proportions must round to 100.00%% within formatting tolerance")
}

func TestLatestAppendsTotalRow(t *testing.T) {
	store := &fakeStore{entries: []models.PortfolioEntry{
		{ID: 7, Date: day("2024-02-01"), Item: "AAPL", Value: dec("75.00")},
		{ID: 8, Date: day("2024-02-01"), Item: "MSFT", Value: dec("25.00")},
	}}

	snapshot, err := New(store).Latest(context.Background())
	require.NoError(t, err)

	rows := snapshot.Rows()
	require.Len(t, rows, 3)

	total := rows[len(rows)-1]
	assert.Equal(t, int64(0), total.ID)
	assert.Equal(t, "Total", total.Name)
	assert.Equal(t, "100.00", total.Value.StringFixed(2))
	assert.Empty(t, total.Proportion)

	assert.Equal(t, "75.00%", rows[0].Proportion)
	assert.Equal(t, "25.00%", rows[1].Proportion)
}

func TestLatestEmptyStore(t *testing.T) {
	_, err := New(&fakeStore{}).Latest(context.Background())
	require.ErrorIs(t, err, ErrEmptySnapshot)
}

func TestLatestStoreErrorPropagates(t *testing.T) {
	store := &fakeStore{err: assert.AnError}
	_, err := New(store).Latest(context.Background())
	require.ErrorIs(t, err, assert.AnError)
}
