// Package marketclock answers whether the US equity market is open at a
// given instant, backed by the XNYS exchange calendar.
package marketclock

import (
	"log"
	"time"

	"github.com/scmhub/calendar"
)

// Clock reports market open/closed state. When the exchange calendar cannot
// be loaded it falls back to a fixed Mon-Fri 09:30-16:00 New York schedule
// that ignores holidays.
type Clock struct {
	cal      *calendar.Calendar
	fallback bool
	loc      *time.Location
}

// NewClock loads the XNYS calendar.
func NewClock() *Clock {
	cal := calendar.GetCalendar("xnys")
	if cal == nil {
		log.Printf("[WARN] marketclock: XNYS calendar unavailable, using fixed Mon-Fri 09:30-16:00 schedule")
		loc, err := time.LoadLocation("America/New_York")
		if err != nil {
			loc = time.FixedZone("EST", -5*60*60)
		}
		return &Clock{fallback: true, loc: loc}
	}
	return &Clock{cal: cal, loc: cal.Loc}
}

// IsOpen reports whether the market is trading at t.
func (c *Clock) IsOpen(t time.Time) bool {
	t = t.In(c.loc)
	if c.fallback {
		wd := t.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			return false
		}
		hour, min := t.Hour(), t.Minute()
		afterOpen := hour > 9 || (hour == 9 && min >= 30)
		return afterOpen && hour < 16
	}
	return c.cal.IsOpen(t)
}
