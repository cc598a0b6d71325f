package engine

import (
	"context"
	"database/sql"

	"tend/internal/clock"
	"tend/internal/storage"
)

// SeedAchievements is the fixed definition set installed into a fresh
// (or upgraded) database. Unlock state lives in the rows, not here.
func SeedAchievements() []storage.Achievement {
	return []storage.Achievement{
		{ID: "start-ritual", Name: "First Steps", Description: "Start your first ritual", Icon: "⚡"},
		{ID: "ritual-to-habit", Name: "Habit Former", Description: "Turn a ritual into a habit (60+ day streak)", Icon: "🏆"},
		{ID: "habit-3-months", Name: "Consistency Master", Description: "Maintain a habit for 3 months", Icon: "📅"},
		{ID: "five-habits", Name: "Habit Collector", Description: "Create 5 habits", Icon: "⭐"},
		{ID: "complete-task", Name: "Task Warrior", Description: "Complete your first task", Icon: "✅"},
		{ID: "complete-all-tasks", Name: "Daily Champion", Description: "Complete all tasks in a day", Icon: "🎯"},
		{ID: "complete-all-rituals", Name: "Ritual Master", Description: "Complete all rituals in a day", Icon: "👑"},
		{ID: "ritual-streak-15", Name: "Dedication Legend", Description: "Complete all rituals daily for 15 days straight", Icon: "🔥", MaxProgress: 15},
	}
}

// achievementChecker evaluates unlock rules over a snapshot. Rule logic
// only reads aggregate history; it never mutates items.
type achievementChecker struct {
	snap  *Snapshot
	today clock.Date
}

func (c *achievementChecker) yesterday() clock.Date { return c.today.Prev() }

// evaluate returns the new unlocked flag and progress for one badge.
func (c *achievementChecker) evaluate(a *storage.Achievement) (unlocked bool, progress int) {
	switch a.ID {
	case "start-ritual":
		return len(c.snap.Rituals) > 0, 0
	case "ritual-to-habit":
		return len(c.snap.Habits) > 0, 0
	case "habit-3-months":
		for _, h := range c.snap.Habits {
			if !h.BecameHabitAt.IsZero() && clock.DaysBetween(h.BecameHabitAt, c.today) >= 90 {
				return true, 0
			}
		}
		return false, 0
	case "five-habits":
		return len(c.snap.Habits) >= 5, 0
	case "complete-task":
		for _, t := range c.snap.Tasks {
			if t.Completed {
				return true, 0
			}
		}
		return false, 0
	case "complete-all-tasks":
		// Judged on yesterday's tasks so same-day additions can't spoil
		// (or fake) the badge.
		found := false
		for _, t := range c.snap.Tasks {
			if t.Date != c.yesterday() {
				continue
			}
			if !t.Completed {
				return false, 0
			}
			found = true
		}
		return found, 0
	case "complete-all-rituals":
		y := c.yesterday()
		found := false
		for _, r := range c.snap.Rituals {
			if !IsDue(r.Frequency, y) {
				continue
			}
			if !r.CompletedOn(y) {
				return false, 0
			}
			found = true
		}
		return found, 0
	case "ritual-streak-15":
		p := c.consecutiveAllRitualDays()
		return p >= a.MaxProgress, p
	default:
		return false, 0
	}
}

// consecutiveAllRitualDays counts, starting from yesterday and looking
// back up to 30 days, the run of days on which every scheduled ritual
// was completed. Days with nothing scheduled are transparent.
func (c *achievementChecker) consecutiveAllRitualDays() int {
	if len(c.snap.Rituals) == 0 {
		return 0
	}
	run := 0
	cursor := c.yesterday()
	for i := 0; i < 30; i++ {
		scheduled := 0
		for _, r := range c.snap.Rituals {
			if !IsDue(r.Frequency, cursor) {
				continue
			}
			scheduled++
			if !r.CompletedOn(cursor) {
				return run
			}
		}
		if scheduled > 0 {
			run++
		}
		cursor = cursor.Prev()
	}
	return run
}

// EvaluateAchievements runs every locked rule over the current snapshot,
// persists unlocks and progress, and returns the newly unlocked badges.
func (s *Service) EvaluateAchievements(ctx context.Context) ([]Achievement, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	checker := &achievementChecker{snap: snap, today: s.clock.Today()}

	var newly []Achievement
	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		repo := storage.NewAchievementRepo(tx)
		all, err := repo.ListAll(ctx)
		if err != nil {
			return err
		}
		for i := range all {
			a := &all[i]
			if a.Unlocked {
				continue
			}
			unlocked, progress := checker.evaluate(a)
			changed := false
			if a.MaxProgress > 0 && progress != a.Progress {
				a.Progress = progress
				changed = true
			}
			if unlocked {
				a.Unlocked = true
				a.UnlockedAt = string(checker.today)
				changed = true
				newly = append(newly, achievementFromRecord(a))
			}
			if changed {
				if err := repo.Update(ctx, a); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return newly, nil
}
