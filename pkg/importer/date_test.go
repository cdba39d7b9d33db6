package importer

import (
	"errors"
	"testing"
)

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"embedded date", "Data_2015-03-14_List.csv", "2015-03-14"},
		{"date only", "2024-02-01", "2024-02-01"},
		{"prefix and suffix", "broker-export-2023-12-31-final.xls", "2023-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ExtractDate(tt.source)
			if err != nil {
				t.Fatalf("ExtractDate(%q) failed: %v", tt.source, err)
			}
			if got := date.Format("2006-01-02"); got != tt.want {
				t.Errorf("ExtractDate(%q) = %s, want %s", tt.source, got, tt.want)
			}
		})
	}
}

func TestExtractDateMissing(t *testing.T) {
	for _, source := range []string{"holdings.csv", "", "2015_03_14.csv"} {
		if _, err := ExtractDate(source); !errors.Is(err, ErrNoDate) {
			t.Errorf("ExtractDate(%q) error = %v, want ErrNoDate", source, err)
		}
	}
}

func TestExtractDateInvalid(t *testing.T) {
	// Matches the pattern but is not a calendar date.
	if _, err := ExtractDate("export-2015-13-40.csv"); err == nil {
		t.Error("ExtractDate accepted month 13")
	}
}
