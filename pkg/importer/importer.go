// Package importer ingests dated portfolio exports into the store.
//
// A run resolves one date for the whole file, windows off the banner and
// footer rows, parses the rest as CSV, normalizes each value to an exact
// decimal and writes every record that is not already committed. Identity is
// the exact (date, item, value) triple; two legitimately separate holdings
// of the same item at the same value on the same date collapse into one row.
// That precision gap is inherited from the identity rule and left as is.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"github.com/haibun/haibun/pkg/models"
)

// Store is the persistence capability the importer needs.
type Store interface {
	Exists(ctx context.Context, date time.Time, item string, value decimal.Decimal) (bool, error)
	Insert(ctx context.Context, date time.Time, item string, value decimal.Decimal) error
}

// Prompter is the human-interaction collaborator used while resolving the
// run date. It is only called before the batch loop starts.
type Prompter interface {
	Confirm(label string) (bool, error)
	Date(label string) (time.Time, error)
}

// Options is the per-run export-format configuration. Column indices are
// 1-based, matching how people count columns in a spreadsheet.
type Options struct {
	Currency    string
	SkipRows    int
	StopRows    int
	ItemColumn  int
	ValueColumn int
}

// Importer runs CSV/XLS portfolio ingestions.
type Importer struct {
	store    Store
	prompter Prompter
	logger   *log.Logger
	out      io.Writer
}

// New creates an importer writing its per-record trace to out.
func New(store Store, prompter Prompter, logger *log.Logger, out io.Writer) *Importer {
	if out == nil {
		out = os.Stdout
	}
	return &Importer{
		store:    store,
		prompter: prompter,
		logger:   logger,
		out:      out,
	}
}

var (
	addedMark  = color.New(color.FgGreen).SprintFunc()
	existsMark = color.New(color.FgYellow).SprintFunc()
	zeroMark   = color.New(color.FgCyan).SprintFunc()
)

// Ingest imports one export file. Records run strictly in file order, one at
// a time, so each dedup check observes every insert made earlier in the same
// run. The first error aborts the run; rows committed before it stay
// committed, a corrected re-run resumes through the dedup check.
func (imp *Importer) Ingest(ctx context.Context, path string, opts Options) error {
	if opts.ItemColumn < 1 || opts.ValueColumn < 1 {
		return fmt.Errorf("column indices are 1-based, got item=%d value=%d", opts.ItemColumn, opts.ValueColumn)
	}

	date, err := imp.resolveDate(path)
	if err != nil {
		return err
	}

	lines, err := readLines(path)
	if err != nil {
		return err
	}

	records, err := parseRecords(Window(lines, opts.SkipRows, opts.StopRows))
	if err != nil {
		return err
	}

	imp.logger.Debug("ingesting records", "file", path, "date", date.Format(models.DateLayout), "records", len(records))

	for _, record := range records {
		if len(record) < opts.ItemColumn || len(record) < opts.ValueColumn {
			return fmt.Errorf("record has %d columns, need item column %d and value column %d",
				len(record), opts.ItemColumn, opts.ValueColumn)
		}

		item := record[opts.ItemColumn-1]
		value, err := NormalizeValue(record[opts.ValueColumn-1], opts.Currency)
		if err != nil {
			return err
		}

		if err := imp.writeRecord(ctx, date, item, value); err != nil {
			return err
		}
	}

	return nil
}

// writeRecord applies the three-branch policy: duplicates are reported and
// skipped, zero values are reported and skipped, anything else is inserted.
// Zero-valued lines are typically closed positions the export still lists;
// they carry no allocation meaning.
func (imp *Importer) writeRecord(ctx context.Context, date time.Time, item string, value decimal.Decimal) error {
	day := date.Format(models.DateLayout)

	exists, err := imp.store.Exists(ctx, date, item, value)
	if err != nil {
		return err
	}

	switch {
	case exists:
		fmt.Fprintf(imp.out, "%s %s %s %s\n", day, item, value, existsMark("already exists"))
	case value.IsZero():
		fmt.Fprintf(imp.out, "%s %s %s %s\n", day, item, value, zeroMark("skipping zero"))
	default:
		if err := imp.store.Insert(ctx, date, item, value); err != nil {
			return err
		}
		fmt.Fprintf(imp.out, "%s %s %s %s\n", day, item, value, addedMark("added"))
	}
	return nil
}

// resolveDate extracts the run date from the file name and has the human
// confirm it, falling back to a manually entered date when declined. One
// date per run; a name without a date is fatal.
func (imp *Importer) resolveDate(path string) (time.Time, error) {
	date, err := ExtractDate(filepath.Base(path))
	if err != nil {
		return time.Time{}, err
	}

	ok, err := imp.prompter.Confirm(date.Format(models.DateLayout) + " correct?")
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to confirm date: %w", err)
	}
	if !ok {
		date, err = imp.prompter.Date("Which date is this from?")
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to read date: %w", err)
		}
	}
	return date, nil
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".xls") {
		return decodeXLS(data)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}

// parseRecords reads the windowed lines as comma-delimited, quote-escaped
// records. Every windowed line is data; a mismatched column count is a
// structural problem and fails the whole run.
func parseRecords(lines []string) ([][]string, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	r := csv.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	var records [][]string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse rows: %w", err)
		}
		records = append(records, record)
	}
	return records, nil
}
