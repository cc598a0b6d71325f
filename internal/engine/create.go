package engine

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"tend/internal/clock"
	"tend/internal/storage"
)

type CreateRitualInput struct {
	Name      string
	Trigger   *Trigger
	Frequency Weekdays
	Reward    string
}

func (s *Service) CreateRitual(ctx context.Context, in CreateRitualInput) (*Item, error) {
	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, err
	}
	for _, d := range in.Frequency {
		if d < 0 || d > 6 {
			return nil, fmt.Errorf("invalid weekday %d", d)
		}
	}

	today := s.clock.Today()
	it := Item{
		ID:        uuid.NewString(),
		Kind:      KindRitual,
		Name:      name,
		Trigger:   in.Trigger,
		Frequency: in.Frequency,
		Reward:    in.Reward,
		CreatedAt: today,
	}

	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		items := storage.NewItemRepo(tx)
		existing, err := items.GetByName(ctx, name)
		if err != nil {
			return err
		}
		if existing != nil {
			return DuplicateNameError{Name: name}
		}
		if err := validateTrigger(ctx, items, it.Trigger, it.ID); err != nil {
			return err
		}
		return items.Insert(ctx, itemRecord(&it))
	})
	if err != nil {
		return nil, err
	}

	s.announceAchievements(ctx)
	return &it, nil
}

func (s *Service) CreateTask(ctx context.Context, name string, date clock.Date) (*Task, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = s.clock.Today()
	}

	t := Task{
		ID:        uuid.NewString(),
		Name:      name,
		Date:      date,
		CreatedAt: s.clock.Today(),
	}
	rec := storage.Task{
		ID:        t.ID,
		Name:      t.Name,
		Date:      string(t.Date),
		CreatedAt: string(t.CreatedAt),
	}
	if err := storage.NewTaskRepo(s.db).Insert(ctx, &rec); err != nil {
		return nil, err
	}
	return &t, nil
}

// announceAchievements evaluates the rule set after a mutation and
// pushes newly unlocked badges to the notifier. Evaluation failures are
// not surfaced; the mutation itself already committed.
func (s *Service) announceAchievements(ctx context.Context) {
	unlocked, err := s.EvaluateAchievements(ctx)
	if err != nil {
		return
	}
	for _, a := range unlocked {
		s.notifier.AchievementUnlocked(a.Name)
	}
}
