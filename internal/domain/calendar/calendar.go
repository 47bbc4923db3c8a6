// Package calendar handles the YYYY-MM-DD dates used by experiments and logs.
package calendar

import (
	"fmt"
	"time"
)

// Layout is the on-disk calendar date format.
const Layout = "2006-01-02"

// Day is the length of one calendar day.
const Day = 24 * time.Hour

// Clock supplies the current instant and the zone used to decide "today".
// The zero value uses time.Now in the local zone.
type Clock struct {
	NowFunc  func() time.Time
	Location *time.Location
}

// System returns a clock reading wall time in loc. A nil loc means time.Local.
func System(loc *time.Location) Clock {
	return Clock{NowFunc: time.Now, Location: loc}
}

// Fixed returns a clock frozen at t, using t's location.
func Fixed(t time.Time) Clock {
	return Clock{NowFunc: func() time.Time { return t }, Location: t.Location()}
}

// Now returns the current instant.
func (c Clock) Now() time.Time {
	if c.NowFunc == nil {
		return time.Now()
	}
	return c.NowFunc()
}

// Today returns the current calendar date in the clock's zone.
func (c Clock) Today() string {
	return Format(c.Now().In(c.location()))
}

func (c Clock) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// Parse reads a calendar date as midnight UTC.
func Parse(date string) (time.Time, error) {
	t, err := time.Parse(Layout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t, nil
}

// Format renders the calendar date of t in t's own zone.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// DaysBetween returns the number of whole days from a to b (b - a).
func DaysBetween(a, b string) (int, error) {
	from, err := Parse(a)
	if err != nil {
		return 0, err
	}
	to, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return int(to.Sub(from) / Day), nil
}

