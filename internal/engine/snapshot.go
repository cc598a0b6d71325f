package engine

import (
	"context"

	"tend/internal/storage"
)

// Snapshot loads the full application state. This is what notification
// and achievement collaborators (and the UI) observe after mutations.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	items, err := storage.NewItemRepo(s.db).ListAll(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := storage.NewTaskRepo(s.db).ListAll(ctx)
	if err != nil {
		return nil, err
	}
	achievements, err := storage.NewAchievementRepo(s.db).ListAll(ctx)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{}
	for i := range items {
		it := itemFromRecord(&items[i])
		if it.Kind == KindHabit {
			snap.Habits = append(snap.Habits, it)
		} else {
			snap.Rituals = append(snap.Rituals, it)
		}
	}
	for i := range tasks {
		snap.Tasks = append(snap.Tasks, taskFromRecord(&tasks[i]))
	}
	for i := range achievements {
		snap.Achievements = append(snap.Achievements, achievementFromRecord(&achievements[i]))
	}
	return snap, nil
}

// FindByIDOrName resolves a user-supplied handle: exact id first, then
// case-insensitive name. Returns nil when nothing matches.
func (s *Service) FindByIDOrName(ctx context.Context, handle string) (*Item, error) {
	items := storage.NewItemRepo(s.db)
	rec, err := items.Get(ctx, handle)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec, err = items.GetByName(ctx, handle)
		if err != nil {
			return nil, err
		}
	}
	if rec == nil {
		return nil, nil
	}
	it := itemFromRecord(rec)
	return &it, nil
}

// FindTaskByIDOrName resolves a task handle the same way.
func (s *Service) FindTaskByIDOrName(ctx context.Context, handle string) (*Task, error) {
	tasks := storage.NewTaskRepo(s.db)
	rec, err := tasks.Get(ctx, handle)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec, err = tasks.GetByName(ctx, handle)
		if err != nil {
			return nil, err
		}
	}
	if rec == nil {
		return nil, nil
	}
	t := taskFromRecord(rec)
	return &t, nil
}
