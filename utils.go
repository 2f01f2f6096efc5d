package voyagecms

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"
const clockLayout = "15:04"

// ParseDate parses a calendar date in YYYY-MM-DD form. Dates are calendar
// values, not instants: they are parsed in UTC and must never be shifted
// through a local timezone, otherwise an itinerary day can render as the
// day before it.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// FormatDate renders a calendar date as YYYY-MM-DD, ignoring whatever
// timezone the value carries.
func FormatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// ValidClock reports whether s is a wall-clock time in HH:MM form.
// Ship times are local to the port and stored as opaque strings.
func ValidClock(s string) bool {
	_, err := time.Parse(clockLayout, s)
	return err == nil
}
