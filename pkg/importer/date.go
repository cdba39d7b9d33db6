package importer

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/haibun/haibun/pkg/models"
)

// ErrNoDate means the source name carries no recognizable YYYY-MM-DD date.
// There is no default date; the run aborts before any row is read.
var ErrNoDate = errors.New("no date found in source name")

var datePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// ExtractDate pulls a YYYY-MM-DD date out of a source identifier such as
// "Data_2015-03-14_List.csv". Prefix and suffix text is arbitrary.
func ExtractDate(name string) (time.Time, error) {
	m := datePattern.FindString(name)
	if m == "" {
		return time.Time{}, fmt.Errorf("%w: %q", ErrNoDate, name)
	}
	date, err := time.Parse(models.DateLayout, m)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q in source name: %w", m, err)
	}
	return date, nil
}
