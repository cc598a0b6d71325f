package engine

import "tend/internal/clock"

const (
	// PromoteStreakThreshold is the streak at which a ritual becomes a
	// habit. 60 matches the shipped product copy ("maintained it for 60+
	// days"); an earlier build used 20. Kept as a single constant so the
	// policy is a one-line change.
	PromoteStreakThreshold = 60

	// DemoteGraceDays is how long after promotion a collapsed habit is
	// left alone before demotion.
	DemoteGraceDays = 25

	// DemoteRecoveryThreshold is the streak a habit must regain within
	// the grace window to stay a habit.
	DemoteRecoveryThreshold = 20
)

// ShouldPromote reports whether a freshly recomputed ritual has earned
// promotion. Evaluated once per completion event, after recompute.
func ShouldPromote(it *Item) bool {
	return it.Kind == KindRitual && it.Streak >= PromoteStreakThreshold
}

// ShouldDemote reports whether a habit has collapsed: streak broken and
// not rebuilt past the recovery threshold after the grace window.
func ShouldDemote(it *Item, today clock.Date) bool {
	if it.Kind != KindHabit || it.Streak != 0 {
		return false
	}
	return clock.DaysBetween(it.BecameHabitAt, today) > DemoteGraceDays &&
		it.Streak < DemoteRecoveryThreshold
}

// Promote converts a ritual into a habit in place: same id, all fields
// carried over, promotion moment stamped.
func Promote(it *Item, today clock.Date) {
	it.Kind = KindHabit
	it.BecameHabitAt = today
}

// Demote converts a habit back into a ritual, dropping the promotion
// stamp.
func Demote(it *Item) {
	it.Kind = KindRitual
	it.BecameHabitAt = ""
}
