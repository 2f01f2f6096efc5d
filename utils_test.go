package voyagecms

import (
	"testing"
	"time"
)

func TestParseDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2025-10-12")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got := FormatDate(d); got != "2025-10-12" {
		t.Fatalf("expected 2025-10-12 got %s", got)
	}
}

func TestParseDateKeepsCalendarDay(t *testing.T) {
	// parsed dates are anchored in UTC so formatting can never shift
	// them into an adjacent day
	parsed, err := ParseDate("2025-10-12")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if parsed.Location() != time.UTC {
		t.Fatalf("expected UTC, got %v", parsed.Location())
	}
	if got := FormatDate(parsed); got != "2025-10-12" {
		t.Fatalf("date shifted: got %s", got)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "12/10/2025", "2025-13-01", "2025-10-12T00:00:00Z"} {
		if _, err := ParseDate(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}

func TestValidClock(t *testing.T) {
	if !ValidClock("17:30") {
		t.Fatalf("expected 17:30 to be valid")
	}
	if ValidClock("25:00") || ValidClock("5pm") || ValidClock("") {
		t.Fatalf("expected invalid clock values to be rejected")
	}
}
