package clock

import "testing"

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2026-03-02"); err != nil {
		t.Fatalf("valid date rejected: %v", err)
	}
	for _, bad := range []string{"", "2026-3-2", "03/02/2026", "2026-13-01", "tomorrow"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) accepted", bad)
		}
	}
}

func TestDateArithmetic(t *testing.T) {
	d := Date("2026-03-02")
	if d.Prev() != "2026-03-01" || d.Next() != "2026-03-03" {
		t.Fatalf("Prev/Next: %s %s", d.Prev(), d.Next())
	}
	if d.AddDays(-30) != "2026-01-31" {
		t.Fatalf("AddDays across month: %s", d.AddDays(-30))
	}
	// 2028 is a leap year.
	if Date("2028-02-28").Next() != "2028-02-29" {
		t.Fatalf("leap day skipped")
	}
	if got := DaysBetween("2026-02-01", "2026-03-02"); got != 29 {
		t.Fatalf("DaysBetween=%d, want 29", got)
	}
	if got := DaysBetween("2026-03-02", "2026-02-01"); got != -29 {
		t.Fatalf("reverse DaysBetween=%d, want -29", got)
	}
}

func TestWeekdayConvention(t *testing.T) {
	// Sunday=0 through Saturday=6.
	if got := Date("2026-03-01").Weekday(); got != 0 {
		t.Fatalf("2026-03-01 weekday=%d, want 0 (Sunday)", got)
	}
	if got := Date("2026-03-07").Weekday(); got != 6 {
		t.Fatalf("2026-03-07 weekday=%d, want 6 (Saturday)", got)
	}
}

func TestBeforeIsLexical(t *testing.T) {
	if !Date("2026-02-28").Before("2026-03-01") {
		t.Fatalf("cross-month ordering broken")
	}
	if Date("2026-03-01").Before("2026-03-01") {
		t.Fatalf("Before must be strict")
	}
}

func TestFixedClock(t *testing.T) {
	if got := Fixed("2026-03-02").Today(); got != "2026-03-02" {
		t.Fatalf("Fixed.Today=%s", got)
	}
	sys := System{}
	if DateOf(sys.Today().Time()) != sys.Today() {
		t.Fatalf("system date does not round-trip")
	}
}
