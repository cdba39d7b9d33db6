package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/extrame/xls"
)

const maxSheetRows = 10000

// decodeXLS turns a legacy Excel export into CSV-shaped lines so the rest of
// the pipeline (windowing, column selection, normalization) does not care
// which format the broker shipped.
func decodeXLS(data []byte) ([]string, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "cp1252")
	if err != nil {
		return nil, fmt.Errorf("error creating workbook: %w", err)
	}

	rows := workbook.ReadAllCells(maxSheetRows)
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in sheet")
	}

	return rowsToLines(rows)
}

// rowsToLines writes cell rows through a CSV writer so fields containing
// commas or quotes stay intact.
func rowsToLines(rows [][]string) ([]string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("error encoding sheet rows: %w", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	return lines, nil
}
