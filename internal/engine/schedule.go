package engine

import (
	"fmt"
	"sort"
	"strings"

	"tend/internal/clock"
)

// Weekdays is a weekly recurrence mask: the set of days (Sunday=0 ..
// Saturday=6) on which an item is due. May be empty (never due) or full
// (daily).
type Weekdays []int

var weekdayNames = []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// ParseWeekdays parses comma-separated day names or digits, plus the
// shorthands "daily", "weekdays" and "weekends".
func ParseWeekdays(input string) (Weekdays, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "", "daily", "all":
		return Weekdays{0, 1, 2, 3, 4, 5, 6}, nil
	case "weekdays":
		return Weekdays{1, 2, 3, 4, 5}, nil
	case "weekends":
		return Weekdays{0, 6}, nil
	}

	seen := map[int]bool{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		day := -1
		if len(part) == 1 && part[0] >= '0' && part[0] <= '6' {
			day = int(part[0] - '0')
		} else {
			for i, name := range weekdayNames {
				if strings.HasPrefix(part, name) {
					day = i
					break
				}
			}
		}
		if day < 0 {
			return nil, fmt.Errorf("invalid weekday %q", part)
		}
		seen[day] = true
	}

	var out Weekdays
	for d := 0; d <= 6; d++ {
		if seen[d] {
			out = append(out, d)
		}
	}
	return out, nil
}

func (w Weekdays) Contains(day int) bool {
	for _, d := range w {
		if d == day {
			return true
		}
	}
	return false
}

func (w Weekdays) String() string {
	if len(w) == 7 {
		return "daily"
	}
	if len(w) == 0 {
		return "never"
	}
	sorted := append(Weekdays(nil), w...)
	sort.Ints(sorted)
	parts := make([]string, 0, len(sorted))
	for _, d := range sorted {
		if d >= 0 && d <= 6 {
			parts = append(parts, weekdayNames[d])
		}
	}
	return strings.Join(parts, ",")
}

// IsDue reports whether a frequency mask makes an item due on the given
// date. Pure and total; the only schedule rule in the system.
func IsDue(frequency Weekdays, date clock.Date) bool {
	return frequency.Contains(date.Weekday())
}

// DueToday partitions items into those scheduled today and the rest,
// preserving order within each group.
func DueToday(items []Item, today clock.Date) (due, other []Item) {
	for _, it := range items {
		if IsDue(it.Frequency, today) {
			due = append(due, it)
		} else {
			other = append(other, it)
		}
	}
	return due, other
}
