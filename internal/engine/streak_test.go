package engine

import (
	"testing"

	"tend/internal/clock"
)

// 2026-03-02 is a Monday.
const monday = clock.Date("2026-03-02")

func daily() Weekdays { return Weekdays{0, 1, 2, 3, 4, 5, 6} }

// completedRange marks every day from start to end inclusive.
func completedRange(it *Item, start, end clock.Date) {
	for d := start; !end.Before(d); d = d.Next() {
		it.CompletedDates = append(it.CompletedDates, d)
	}
}

func TestStreakEmptyHistory(t *testing.T) {
	it := &Item{Frequency: daily()}
	res := RecomputeStreak(it, monday)
	if res.Streak != 0 || res.FrozenStreaks != 0 {
		t.Fatalf("empty history: got %+v, want zeros", res)
	}
}

func TestStreakSingleCompletionToday(t *testing.T) {
	it := &Item{Frequency: daily(), CompletedDates: []clock.Date{monday}}
	res := RecomputeStreak(it, monday)
	if res.Streak != 1 {
		t.Fatalf("streak=%d, want 1", res.Streak)
	}
}

func TestStreakFullCoverage(t *testing.T) {
	it := &Item{Frequency: daily()}
	completedRange(it, monday.AddDays(-6), monday)
	res := RecomputeStreak(it, monday)
	if res.Streak != 7 {
		t.Fatalf("streak=%d, want 7 (every due day since first completion)", res.Streak)
	}
}

func TestStreakTodayPendingDoesNotBreak(t *testing.T) {
	// Mon/Wed/Fri schedule, last three due days completed, today is the
	// following Monday with nothing logged yet.
	it := &Item{
		Frequency: Weekdays{1, 3, 5},
		CompletedDates: []clock.Date{
			"2026-02-23", // Mon
			"2026-02-25", // Wed
			"2026-02-27", // Fri
		},
	}
	res := RecomputeStreak(it, monday)
	if res.Streak != 3 {
		t.Fatalf("streak=%d, want 3 (pending Monday must not break)", res.Streak)
	}
}

func TestStreakCompletingTodayNeverDecreases(t *testing.T) {
	it := &Item{Frequency: daily()}
	completedRange(it, monday.AddDays(-4), monday.Prev())
	before := RecomputeStreak(it, monday)

	it.CompletedDates = append(it.CompletedDates, monday)
	after := RecomputeStreak(it, monday)
	if after.Streak < before.Streak {
		t.Fatalf("streak dropped from %d to %d after completing today", before.Streak, after.Streak)
	}
	if after.Streak != before.Streak+1 {
		t.Fatalf("streak=%d, want %d", after.Streak, before.Streak+1)
	}
}

func TestStreakDuplicateDatesDoNotDoubleCount(t *testing.T) {
	it := &Item{Frequency: daily(), CompletedDates: []clock.Date{monday, monday, monday.Prev(), monday.Prev()}}
	res := RecomputeStreak(it, monday)
	if res.Streak != 2 {
		t.Fatalf("streak=%d, want 2", res.Streak)
	}
}

func TestStreakBreaksOnUncoveredMiss(t *testing.T) {
	it := &Item{Frequency: daily()}
	// Two completed days, a gap, then older history the walk must not
	// reach past the break.
	it.CompletedDates = []clock.Date{
		monday.Prev(),
		monday.AddDays(-2),
		monday.AddDays(-5),
	}
	res := RecomputeStreak(it, monday)
	if res.Streak != 2 {
		t.Fatalf("streak=%d, want 2 (miss with empty bank ends the walk)", res.Streak)
	}
}

func TestFrozenStreakEarning(t *testing.T) {
	cases := []struct {
		days       int
		wantFrozen int
	}{
		{9, 0},
		{10, 1},
		{19, 1},
		{20, 2},
		{30, 2}, // capped
	}
	for _, tc := range cases {
		it := &Item{Frequency: daily()}
		completedRange(it, monday.AddDays(-(tc.days-1)), monday)
		res := RecomputeStreak(it, monday)
		if res.Streak != tc.days {
			t.Fatalf("%d days: streak=%d, want %d", tc.days, res.Streak, tc.days)
		}
		if res.FrozenStreaks != tc.wantFrozen {
			t.Fatalf("%d days: frozen=%d, want %d", tc.days, res.FrozenStreaks, tc.wantFrozen)
		}
	}
}

func TestFrozenStreakCoversMiss(t *testing.T) {
	it := &Item{Frequency: daily()}
	// Ten recent completions, one missed day, ten older completions.
	completedRange(it, monday.AddDays(-10), monday.Prev())
	completedRange(it, monday.AddDays(-21), monday.AddDays(-12))

	res := RecomputeStreak(it, monday)
	// The walk earns a credit at run 10, spends it on the miss at day
	// -11 (which still counts), and earns again at run 20.
	if res.Streak != 21 {
		t.Fatalf("streak=%d, want 21 (credit covers the miss)", res.Streak)
	}
	if res.FrozenStreaks != 1 {
		t.Fatalf("frozen=%d, want 1 (one earned credit spent, one banked later)", res.FrozenStreaks)
	}
}

func TestFrozenStreakBankNeverExceedsCap(t *testing.T) {
	it := &Item{Frequency: daily()}
	completedRange(it, monday.AddDays(-99), monday)
	res := RecomputeStreak(it, monday)
	if res.FrozenStreaks < 0 || res.FrozenStreaks > MaxFrozenStreaks {
		t.Fatalf("frozen=%d outside [0,%d]", res.FrozenStreaks, MaxFrozenStreaks)
	}
	if res.FrozenStreaks != MaxFrozenStreaks {
		t.Fatalf("frozen=%d, want cap %d", res.FrozenStreaks, MaxFrozenStreaks)
	}
}

func TestStreakWalkStopsAtEarliestCompletion(t *testing.T) {
	// A due-but-missed day before the first completion must not be
	// examined.
	it := &Item{Frequency: daily(), CompletedDates: []clock.Date{monday.Prev(), monday}}
	res := RecomputeStreak(it, monday)
	if res.Streak != 2 {
		t.Fatalf("streak=%d, want 2", res.Streak)
	}
}

func TestStreakNonScheduledDaysAreTransparent(t *testing.T) {
	// Weekend-only schedule completed for two weekends; weekdays in
	// between must not count or break.
	it := &Item{
		Frequency: Weekdays{0, 6},
		CompletedDates: []clock.Date{
			"2026-02-21", // Sat
			"2026-02-22", // Sun
			"2026-02-28", // Sat
			"2026-03-01", // Sun
		},
	}
	res := RecomputeStreak(it, monday)
	if res.Streak != 4 {
		t.Fatalf("streak=%d, want 4", res.Streak)
	}
}

func TestRecomputeUpdatesDerivedFields(t *testing.T) {
	it := &Item{Frequency: daily(), CompletedDates: []clock.Date{monday.Prev(), monday.AddDays(-2)}}
	Recompute(it, monday)
	if it.Streak != 2 {
		t.Fatalf("streak=%d, want 2", it.Streak)
	}
	if it.LastCompleted != monday.Prev() {
		t.Fatalf("lastCompleted=%s, want %s", it.LastCompleted, monday.Prev())
	}
}
