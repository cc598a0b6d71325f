package clock

import (
	"fmt"
	"time"
)

// Layout is the canonical calendar-date form used for storage and
// comparison. Lexical order on this form matches chronological order.
const Layout = "2006-01-02"

// Date is a calendar date with no time component, held in canonical
// YYYY-MM-DD form.
type Date string

// ParseDate validates input against the canonical layout.
func ParseDate(s string) (Date, error) {
	if _, err := time.Parse(Layout, s); err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date(s), nil
}

// DateOf truncates a time to its calendar date in that time's location.
func DateOf(t time.Time) Date {
	return Date(t.Format(Layout))
}

func (d Date) String() string { return string(d) }

func (d Date) IsZero() bool { return d == "" }

// Time returns midnight of the date in the local timezone.
func (d Date) Time() time.Time {
	t, err := time.ParseInLocation(Layout, string(d), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddDays walks the date forward (or backward for negative n).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) Prev() Date { return d.AddDays(-1) }

func (d Date) Next() Date { return d.AddDays(1) }

// Before reports strict chronological order; canonical form makes this
// a plain string comparison.
func (d Date) Before(other Date) bool { return d < other }

// Weekday returns the day of week as Sunday=0 .. Saturday=6.
func (d Date) Weekday() int {
	return int(d.Time().Weekday())
}

// DaysBetween returns the whole days from a to b (negative when b is
// earlier).
func DaysBetween(a, b Date) int {
	return int(b.Time().Sub(a.Time()).Hours() / 24)
}
