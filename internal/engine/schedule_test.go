package engine

import "testing"

func TestIsDue(t *testing.T) {
	// 2026-03-02 is a Monday (weekday 1).
	if !IsDue(Weekdays{1, 3, 5}, monday) {
		t.Fatalf("Monday should be due on a Mon/Wed/Fri schedule")
	}
	if IsDue(Weekdays{0, 6}, monday) {
		t.Fatalf("Monday should not be due on a weekend schedule")
	}
	if IsDue(Weekdays{}, monday) {
		t.Fatalf("empty frequency is never due")
	}
	if !IsDue(daily(), monday) {
		t.Fatalf("daily frequency is always due")
	}
}

func TestParseWeekdays(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"daily", "daily"},
		{"", "daily"},
		{"weekdays", "mon,tue,wed,thu,fri"},
		{"weekends", "sun,sat"},
		{"mon,wed,fri", "mon,wed,fri"},
		{"1,3,5", "mon,wed,fri"},
		{"Sat, Sun", "sun,sat"},
	}
	for _, tc := range cases {
		got, err := ParseWeekdays(tc.in)
		if err != nil {
			t.Fatalf("ParseWeekdays(%q): %v", tc.in, err)
		}
		if got.String() != tc.want {
			t.Fatalf("ParseWeekdays(%q)=%s, want %s", tc.in, got, tc.want)
		}
	}

	if _, err := ParseWeekdays("noday"); err == nil {
		t.Fatalf("expected error for bogus weekday")
	}
}

func TestParseWeekdaysCaseInsensitive(t *testing.T) {
	got, err := ParseWeekdays("MON,Friday")
	if err != nil {
		t.Fatalf("ParseWeekdays: %v", err)
	}
	if got.String() != "mon,fri" {
		t.Fatalf("got %s, want mon,fri", got)
	}
}

func TestDueToday(t *testing.T) {
	items := []Item{
		{Name: "weekday", Frequency: Weekdays{1, 2, 3, 4, 5}},
		{Name: "weekend", Frequency: Weekdays{0, 6}},
		{Name: "daily", Frequency: daily()},
	}
	due, other := DueToday(items, monday)
	if len(due) != 2 || due[0].Name != "weekday" || due[1].Name != "daily" {
		t.Fatalf("due=%v", names(due))
	}
	if len(other) != 1 || other[0].Name != "weekend" {
		t.Fatalf("other=%v", names(other))
	}
}

func names(items []Item) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].Name
	}
	return out
}
