package importer

import "testing"

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		currency string
		want     string
	}{
		{"dollar with thousands separator", "$1,234.50", "$", "1234.50"},
		{"pound", "£999.99", "£", "999.99"},
		{"no marker configured", "100.00", "", "100.00"},
		{"zero", "$0.00", "$", "0.00"},
		{"surrounding whitespace", " $12.30 ", "$", "12.30"},
		{"multi-char marker", "USD 55.10", "USD ", "55.10"},
		{"negative", "-$4.20", "$", "-4.20"},
		{"multiple separators", "$1,234,567.89", "$", "1234567.89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeValue(tt.raw, tt.currency)
			if err != nil {
				t.Fatalf("NormalizeValue(%q, %q) failed: %v", tt.raw, tt.currency, err)
			}
			if got.String() != tt.want {
				t.Errorf("NormalizeValue(%q, %q) = %s, want %s", tt.raw, tt.currency, got.String(), tt.want)
			}
		})
	}
}

func TestNormalizeValueDeterministic(t *testing.T) {
	// Dedup compares stored values exactly, so repeated normalization of the
	// same text must give identical decimals.
	a, err := NormalizeValue("$1,234.50", "$")
	if err != nil {
		t.Fatal(err)
	}
	b, err := NormalizeValue("$1,234.50", "$")
	if err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() || !a.Equal(b) {
		t.Errorf("normalization not stable: %s vs %s", a, b)
	}
}

func TestNormalizeValueInvalid(t *testing.T) {
	for _, raw := range []string{"", "abc", "$", "12.3.4"} {
		if _, err := NormalizeValue(raw, "$"); err == nil {
			t.Errorf("NormalizeValue(%q) accepted malformed input", raw)
		}
	}
}
