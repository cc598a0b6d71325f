package engine

import (
	"context"
	"database/sql"

	"tend/internal/storage"
)

// CompleteResult reports the full effect of one completion event.
type CompleteResult struct {
	Item         Item
	StreakBefore int
	Promoted     bool
	Demoted      bool
	Milestone    int // newly crossed multiple-of-10 streak, 0 otherwise
	Dependents   []string
}

// CompleteItem applies a completion event as one atomic snapshot
// transition: append today's date, recompute streak and freeze credits,
// evaluate the promotion/demotion predicate, and cascade trigger
// cleanup — all inside a single transaction, before any collaborator
// observes the result. Completing an unknown id is a no-op returning
// (nil, nil).
func (s *Service) CompleteItem(ctx context.Context, id string) (*CompleteResult, error) {
	today := s.clock.Today()

	var res *CompleteResult
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		items := storage.NewItemRepo(tx)
		rec, err := items.Get(ctx, id)
		if err != nil {
			return err
		}
		if rec == nil {
			return nil
		}

		it := itemFromRecord(rec)
		streakBefore := it.Streak

		if !it.CompletedOn(today) {
			it.CompletedDates = append(it.CompletedDates, today)
		}
		Recompute(&it, today)

		// Dependents are captured at the moment of completion, before
		// any transition can clear their triggers.
		deps, err := items.ListDependents(ctx, it.ID)
		if err != nil {
			return err
		}
		var depNames []string
		for _, d := range deps {
			depNames = append(depNames, d.Name)
		}

		promoted := false
		demoted := false
		switch {
		case ShouldPromote(&it):
			Promote(&it, today)
			promoted = true
		case ShouldDemote(&it, today):
			Demote(&it)
			demoted = true
		}

		if err := items.AddCompletion(ctx, it.ID, string(today)); err != nil {
			return err
		}
		if err := items.Update(ctx, itemRecord(&it)); err != nil {
			return err
		}
		if promoted || demoted {
			if err := items.ClearTriggersReferencing(ctx, it.ID); err != nil {
				return err
			}
		}

		milestone := 0
		if it.Streak > 0 && it.Streak%10 == 0 && it.Streak != streakBefore {
			milestone = it.Streak
		}

		res = &CompleteResult{
			Item:         it,
			StreakBefore: streakBefore,
			Promoted:     promoted,
			Demoted:      demoted,
			Milestone:    milestone,
			Dependents:   depNames,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}

	// The transaction is committed; collaborators now observe the
	// finished snapshot.
	s.notifier.Completed(res.Item.Name, res.Item.Streak)
	if res.Item.Reward != "" {
		s.notifier.RewardEarned(res.Item.Name, res.Item.Reward)
	}
	if res.Milestone > 0 {
		s.notifier.StreakMilestone(res.Item.Name, res.Milestone)
	}
	if res.Promoted {
		s.notifier.Promoted(res.Item.Name)
	}
	if res.Demoted {
		s.notifier.Demoted(res.Item.Name)
	}
	if len(res.Dependents) > 0 {
		s.notifier.TriggerReady(res.Item.Name, res.Dependents)
	}
	s.announceAchievements(ctx)

	return res, nil
}

// CompleteTask toggles a one-off task's done flag. Unknown ids are a
// no-op returning (nil, nil).
func (s *Service) CompleteTask(ctx context.Context, id string) (*Task, error) {
	tasks := storage.NewTaskRepo(s.db)
	rec, err := tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	rec.Completed = !rec.Completed
	if err := tasks.SetCompleted(ctx, rec.ID, rec.Completed); err != nil {
		return nil, err
	}
	t := taskFromRecord(rec)
	s.announceAchievements(ctx)
	return &t, nil
}

// RecomputeAll refreshes every item's derived streak fields against the
// current date. Demotion is also evaluated here so a collapsed habit
// does not need its own completion event to fall back — completing an
// unrelated item (which triggers achievement evaluation and calls this
// path via the day commands) is enough.
func (s *Service) RecomputeAll(ctx context.Context) error {
	today := s.clock.Today()
	var demotedNames []string
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		items := storage.NewItemRepo(tx)
		all, err := items.ListAll(ctx)
		if err != nil {
			return err
		}
		for i := range all {
			it := itemFromRecord(&all[i])
			Recompute(&it, today)
			demoted := false
			if ShouldDemote(&it, today) {
				Demote(&it)
				demoted = true
			}
			if err := items.Update(ctx, itemRecord(&it)); err != nil {
				return err
			}
			if demoted {
				if err := items.ClearTriggersReferencing(ctx, it.ID); err != nil {
					return err
				}
				demotedNames = append(demotedNames, it.Name)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	for _, name := range demotedNames {
		s.notifier.Demoted(name)
	}
	return nil
}
