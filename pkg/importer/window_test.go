package importer

import (
	"reflect"
	"testing"
)

func TestWindow(t *testing.T) {
	lines := []string{"a", "b", "c", "d", "e", "f"}

	tests := []struct {
		name string
		skip int
		stop int
		want []string
	}{
		{"no trimming", 0, 0, []string{"a", "b", "c", "d", "e", "f"}},
		{"skip one stop two", 1, 2, []string{"b", "c", "d"}},
		{"stop only", 0, 2, []string{"a", "b", "c", "d"}},
		{"skip only", 2, 0, []string{"c", "d", "e", "f"}},
		{"covers everything", 3, 3, []string{}},
		{"exceeds length", 4, 4, []string{}},
		{"skip alone exceeds length", 7, 0, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Window(lines, tt.skip, tt.stop)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Window(%v, %d, %d) = %v, want %v", lines, tt.skip, tt.stop, got, tt.want)
			}
		})
	}
}

func TestWindowEmptyInput(t *testing.T) {
	if got := Window(nil, 1, 1); len(got) != 0 {
		t.Errorf("Window(nil, 1, 1) = %v, want empty", got)
	}
}
