package quiz

import (
	"time"

	errorvalues "github.com/aaronparryphoto/til-demo/internal/error_values"
)

const dateLayout = "2006-01-02"

// ParseDate validates a YYYY-MM-DD string and returns it as a UTC
// midnight instant. All date arithmetic in this package operates on
// whole days.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, errorvalues.ErrInvalidDate
	}
	return t, nil
}

// Today returns the current UTC date as YYYY-MM-DD.
func Today() string {
	return time.Now().UTC().Format(dateLayout)
}

// PrevDay returns the date one whole day before the given one. The
// input must already be validated.
func PrevDay(date string) string {
	t, _ := time.Parse(dateLayout, date)
	return t.AddDate(0, 0, -1).Format(dateLayout)
}

// DaysBetween returns the whole-day difference between two dates.
func DaysBetween(from, to string) int {
	f, _ := time.Parse(dateLayout, from)
	t, _ := time.Parse(dateLayout, to)
	return int(t.Sub(f).Hours() / 24)
}

// AreConsecutive reports whether two dates are exactly one whole day
// apart, earlier first.
func AreConsecutive(earlier, later string) bool {
	return DaysBetween(earlier, later) == 1
}
