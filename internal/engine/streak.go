package engine

import "tend/internal/clock"

const (
	// FrozenStreakEarnRun is the consecutive satisfied due-day run that
	// banks one freeze credit.
	FrozenStreakEarnRun = 10

	// MaxFrozenStreaks caps the credit bank regardless of how many
	// multiples of the earn run are reached.
	MaxFrozenStreaks = 2
)

// StreakResult is the externally observable contract of a recompute:
// the final streak count and the freeze credits remaining in the bank.
type StreakResult struct {
	Streak        int
	FrozenStreaks int
}

// walkState carries the two correlated accumulators of the backward day
// walk. Keeping them in one pass guarantees the today-is-exempt rule is
// applied identically to streak counting and credit accounting.
type walkState struct {
	streak int // consecutive scheduled days satisfied
	run    int // current run of actually-completed due days, feeds earning
	bank   int // freeze credits available, earned and spent in-walk
}

// RecomputeStreak walks backward one calendar day at a time from today
// down to the earliest recorded completion, skipping non-due days:
//
//   - a completed due day extends the streak and the earning run; every
//     FrozenStreakEarnRun consecutive completions bank one credit, up to
//     MaxFrozenStreaks;
//   - today, if due but not yet completed, is pending: it neither breaks
//     nor extends the streak;
//   - any other missed due day spends a banked credit to keep the streak
//     alive, or ends the walk when the bank is empty.
//
// An item with no completions yields {0, 0} without walking.
func RecomputeStreak(it *Item, today clock.Date) StreakResult {
	earliest, ok := it.EarliestCompletion()
	if !ok {
		return StreakResult{}
	}

	var st walkState
	for cursor := today; !cursor.Before(earliest); cursor = cursor.Prev() {
		if !IsDue(it.Frequency, cursor) {
			continue
		}
		switch {
		case it.CompletedOn(cursor):
			st.streak++
			st.run++
			if st.run%FrozenStreakEarnRun == 0 && st.bank < MaxFrozenStreaks {
				st.bank++
			}
		case cursor == today:
			// Due but not yet completed: today's pending completion
			// never breaks an existing streak.
		default:
			if st.bank == 0 {
				// Uncovered miss: the run resets and the streak ends here.
				st.run = 0
				return StreakResult{Streak: st.streak, FrozenStreaks: st.bank}
			}
			// A credit covers the miss and keeps the streak counting.
			st.bank--
			st.streak++
		}
	}
	return StreakResult{Streak: st.streak, FrozenStreaks: st.bank}
}

// Recompute refreshes the derived fields on an item in place.
func Recompute(it *Item, today clock.Date) {
	res := RecomputeStreak(it, today)
	it.Streak = res.Streak
	it.FrozenStreaks = res.FrozenStreaks

	it.LastCompleted = ""
	for _, d := range it.CompletedDates {
		if it.LastCompleted.Before(d) {
			it.LastCompleted = d
		}
	}
}
