package engine

import (
	"tend/internal/clock"
	"tend/internal/storage"
)

// Conversions between stored rows and domain shapes. The trigger tagged
// union flattens into nullable columns; the frequency mask rides as a
// JSON array.

func itemFromRecord(rec *storage.Item) Item {
	it := Item{
		ID:            rec.ID,
		Kind:          ItemKind(rec.Kind),
		Name:          rec.Name,
		Frequency:     Weekdays(rec.Frequency),
		Reward:        rec.Reward,
		Streak:        rec.Streak,
		FrozenStreaks: rec.FrozenStreaks,
		SkipUsed:      rec.SkipUsed,
		LastCompleted: clock.Date(rec.LastCompleted),
		CreatedAt:     clock.Date(rec.CreatedAt),
		BecameHabitAt: clock.Date(rec.BecameHabitAt),
	}
	switch TriggerKind(rec.TriggerKind) {
	case TriggerTime:
		it.Trigger = &Trigger{Kind: TriggerTime, Time: rec.TriggerTime}
	case TriggerHabit:
		it.Trigger = &Trigger{Kind: TriggerHabit, HabitID: rec.TriggerHabitID, HabitName: rec.TriggerHabitName}
	}
	for _, d := range rec.CompletedDates {
		it.CompletedDates = append(it.CompletedDates, clock.Date(d))
	}
	return it
}

func itemRecord(it *Item) *storage.Item {
	rec := &storage.Item{
		ID:            it.ID,
		Kind:          string(it.Kind),
		Name:          it.Name,
		Frequency:     []int(it.Frequency),
		Reward:        it.Reward,
		Streak:        it.Streak,
		FrozenStreaks: it.FrozenStreaks,
		SkipUsed:      it.SkipUsed,
		LastCompleted: string(it.LastCompleted),
		CreatedAt:     string(it.CreatedAt),
		BecameHabitAt: string(it.BecameHabitAt),
	}
	if rec.Frequency == nil {
		rec.Frequency = []int{}
	}
	if it.Trigger != nil {
		rec.TriggerKind = string(it.Trigger.Kind)
		rec.TriggerTime = it.Trigger.Time
		rec.TriggerHabitID = it.Trigger.HabitID
		rec.TriggerHabitName = it.Trigger.HabitName
	}
	for _, d := range it.CompletedDates {
		rec.CompletedDates = append(rec.CompletedDates, string(d))
	}
	return rec
}

func taskFromRecord(rec *storage.Task) Task {
	return Task{
		ID:        rec.ID,
		Name:      rec.Name,
		Date:      clock.Date(rec.Date),
		Completed: rec.Completed,
		CreatedAt: clock.Date(rec.CreatedAt),
	}
}

func achievementFromRecord(rec *storage.Achievement) Achievement {
	return Achievement{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Icon:        rec.Icon,
		Unlocked:    rec.Unlocked,
		UnlockedAt:  clock.Date(rec.UnlockedAt),
		Progress:    rec.Progress,
		MaxProgress: rec.MaxProgress,
	}
}
