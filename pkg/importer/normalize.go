package importer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizeValue turns an exported value field into an exact decimal:
// every occurrence of the configured currency marker and every thousands
// separator is stripped, the remainder must parse. Decimals stay exact so
// repeated ingestion of the same text produces identical stored values for
// the dedup comparison.
func NormalizeValue(raw, currency string) (decimal.Decimal, error) {
	s := raw
	if currency != "" {
		s = strings.ReplaceAll(s, currency, "")
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to parse value %q: %w", raw, err)
	}
	return value, nil
}
