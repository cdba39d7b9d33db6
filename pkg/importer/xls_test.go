package importer

import (
	"reflect"
	"testing"
)

func TestRowsToLines(t *testing.T) {
	rows := [][]string{
		{"Portfolio report", ""},
		{"Vanguard Total, World", "$1,234.50"},
		{"AAPL", "$100.00"},
	}

	lines, err := rowsToLines(rows)
	if err != nil {
		t.Fatalf("rowsToLines failed: %v", err)
	}

	want := []string{
		`Portfolio report,`,
		`"Vanguard Total, World","$1,234.50"`,
		`AAPL,$100.00`,
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("rowsToLines = %q, want %q", lines, want)
	}
}
