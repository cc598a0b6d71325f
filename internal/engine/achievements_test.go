package engine

import (
	"context"
	"testing"

	"tend/internal/clock"
	"tend/internal/storage"
)

func unlockedSet(t *testing.T, svc *Service) map[string]bool {
	t.Helper()
	all, err := storage.NewAchievementRepo(svc.db).ListAll(context.Background())
	if err != nil {
		t.Fatalf("list achievements: %v", err)
	}
	set := map[string]bool{}
	for _, a := range all {
		if a.Unlocked {
			set[a.ID] = true
		}
	}
	return set
}

func TestFirstRitualUnlock(t *testing.T) {
	svc := newTestService(t, monday)
	ctx := context.Background()

	if got := unlockedSet(t, svc); len(got) != 0 {
		t.Fatalf("fresh db should have nothing unlocked: %v", got)
	}

	if _, err := svc.CreateRitual(ctx, CreateRitualInput{Name: "Meditate", Frequency: daily()}); err != nil {
		t.Fatalf("CreateRitual: %v", err)
	}
	got := unlockedSet(t, svc)
	if !got["start-ritual"] {
		t.Fatalf("start-ritual not unlocked: %v", got)
	}
	if got["ritual-to-habit"] {
		t.Fatalf("habit badge unlocked with no habits")
	}
}

func TestTaskAndHabitUnlocks(t *testing.T) {
	svc := newTestService(t, monday)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "Pay rent", monday)
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if _, err := svc.CompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}
	if got := unlockedSet(t, svc); !got["complete-task"] {
		t.Fatalf("complete-task not unlocked: %v", got)
	}

	insertHabit(t, svc, Item{ID: "h1", Name: "Read", BecameHabitAt: monday.AddDays(-91)})
	newly, err := svc.EvaluateAchievements(ctx)
	if err != nil {
		t.Fatalf("EvaluateAchievements: %v", err)
	}
	ids := map[string]bool{}
	for _, a := range newly {
		ids[a.ID] = true
	}
	if !ids["ritual-to-habit"] || !ids["habit-3-months"] {
		t.Fatalf("newly unlocked=%v, want habit badges", ids)
	}

	// Already-unlocked badges are not reported twice.
	newly, err = svc.EvaluateAchievements(ctx)
	if err != nil {
		t.Fatalf("EvaluateAchievements again: %v", err)
	}
	if len(newly) != 0 {
		t.Fatalf("re-evaluation reported %v", newly)
	}
}

func TestAllRitualsBadgeJudgesYesterday(t *testing.T) {
	svc := newTestService(t, monday)
	ctx := context.Background()

	it, err := svc.CreateRitual(ctx, CreateRitualInput{Name: "Stretch", Frequency: daily()})
	if err != nil {
		t.Fatalf("CreateRitual: %v", err)
	}

	// Only today completed: yesterday was missed, no badge.
	if _, err := svc.CompleteItem(ctx, it.ID); err != nil {
		t.Fatalf("CompleteItem: %v", err)
	}
	if got := unlockedSet(t, svc); got["complete-all-rituals"] {
		t.Fatalf("badge unlocked despite missed yesterday")
	}

	seedCompletions(t, svc, it.ID, monday.Prev(), monday.Prev())
	if _, err := svc.EvaluateAchievements(ctx); err != nil {
		t.Fatalf("EvaluateAchievements: %v", err)
	}
	if got := unlockedSet(t, svc); !got["complete-all-rituals"] {
		t.Fatalf("badge not unlocked after full yesterday: %v", got)
	}
}

func TestDedicationProgressCounter(t *testing.T) {
	svc := newTestService(t, monday)
	ctx := context.Background()

	it, err := svc.CreateRitual(ctx, CreateRitualInput{Name: "Journal", Frequency: daily()})
	if err != nil {
		t.Fatalf("CreateRitual: %v", err)
	}
	seedCompletions(t, svc, it.ID, monday.AddDays(-7), monday.Prev())
	if _, err := svc.EvaluateAchievements(ctx); err != nil {
		t.Fatalf("EvaluateAchievements: %v", err)
	}

	all, err := storage.NewAchievementRepo(svc.db).ListAll(ctx)
	if err != nil {
		t.Fatalf("list achievements: %v", err)
	}
	for _, a := range all {
		if a.ID != "ritual-streak-15" {
			continue
		}
		if a.Unlocked {
			t.Fatalf("legend badge unlocked at 7 days")
		}
		if a.Progress != 7 {
			t.Fatalf("progress=%d, want 7", a.Progress)
		}
		return
	}
	t.Fatalf("ritual-streak-15 badge missing from seed")
}

func TestDayOffsetsAreTransparent(t *testing.T) {
	// A weekday-only ritual: the weekend contributes nothing to the
	// dedication run but does not break it either.
	saturday := clock.Date("2026-02-28")
	checker := &achievementChecker{today: saturday.AddDays(2), snap: &Snapshot{}}

	it := Item{ID: "r", Kind: KindRitual, Name: "Standup", Frequency: Weekdays{1, 2, 3, 4, 5}, CreatedAt: "2026-02-01"}
	// Completed every weekday of the prior week (Feb 23–27).
	for d := clock.Date("2026-02-23"); !clock.Date("2026-02-27").Before(d); d = d.Next() {
		it.CompletedDates = append(it.CompletedDates, d)
	}
	checker.snap.Rituals = []Item{it}

	if got := checker.consecutiveAllRitualDays(); got != 5 {
		t.Fatalf("run=%d, want 5 weekday completions with a transparent weekend", got)
	}
}
