package marketclock

import (
	"testing"
	"time"
)

func fallbackClock() *Clock {
	return &Clock{fallback: true, loc: time.FixedZone("EST", -5*60*60)}
}

func TestFallbackRule(t *testing.T) {
	c := fallbackClock()
	loc := c.loc

	tests := []struct {
		name string
		t    time.Time
		open bool
	}{
		{"weekday mid-session", time.Date(2024, 3, 6, 12, 0, 0, 0, loc), true},
		{"weekday at open", time.Date(2024, 3, 6, 9, 30, 0, 0, loc), true},
		{"weekday before open", time.Date(2024, 3, 6, 9, 29, 0, 0, loc), false},
		{"weekday at close", time.Date(2024, 3, 6, 16, 0, 0, 0, loc), false},
		{"saturday", time.Date(2024, 3, 9, 12, 0, 0, 0, loc), false},
		{"sunday", time.Date(2024, 3, 10, 12, 0, 0, 0, loc), false},
	}
	for _, tt := range tests {
		if got := c.IsOpen(tt.t); got != tt.open {
			t.Errorf("%s: IsOpen = %v, want %v", tt.name, got, tt.open)
		}
	}
}

func TestIsOpen_ConvertsTimezone(t *testing.T) {
	c := fallbackClock()
	// 17:00 UTC is 12:00 EST, inside the session on a Wednesday.
	utc := time.Date(2024, 3, 6, 17, 0, 0, 0, time.UTC)
	if !c.IsOpen(utc) {
		t.Error("UTC instant inside the New York session reported closed")
	}
}
