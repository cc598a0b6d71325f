package engine

import (
	"context"
	"database/sql"
	"fmt"

	"tend/internal/storage"
)

// UpdateItemInput carries the editable fields of a scheduled item. Nil
// means "leave unchanged"; ClearTrigger drops the trigger entirely (an
// item may exist trigger-less).
type UpdateItemInput struct {
	ID           string
	Name         *string
	Trigger      *Trigger
	ClearTrigger bool
	Frequency    *Weekdays
	Reward       *string
}

// RenameTask changes a one-off task's name. Unknown ids are a no-op
// returning (nil, nil).
func (s *Service) RenameTask(ctx context.Context, id, name string) (*Task, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	tasks := storage.NewTaskRepo(s.db)
	rec, err := tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	if err := tasks.Rename(ctx, rec.ID, name); err != nil {
		return nil, err
	}
	rec.Name = name
	t := taskFromRecord(rec)
	return &t, nil
}

// UpdateItem edits an item, revalidating name uniqueness and trigger
// source uniqueness. Unknown ids are a no-op returning (nil, nil).
func (s *Service) UpdateItem(ctx context.Context, in UpdateItemInput) (*Item, error) {
	var out *Item
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		items := storage.NewItemRepo(tx)
		rec, err := items.Get(ctx, in.ID)
		if err != nil {
			return err
		}
		if rec == nil {
			return nil
		}
		it := itemFromRecord(rec)

		if in.Name != nil {
			name, err := normalizeName(*in.Name)
			if err != nil {
				return err
			}
			existing, err := items.GetByName(ctx, name)
			if err != nil {
				return err
			}
			if existing != nil && existing.ID != it.ID {
				return DuplicateNameError{Name: name}
			}
			it.Name = name
		}
		if in.Frequency != nil {
			for _, d := range *in.Frequency {
				if d < 0 || d > 6 {
					return fmt.Errorf("invalid weekday %d", d)
				}
			}
			it.Frequency = *in.Frequency
		}
		if in.Reward != nil {
			it.Reward = *in.Reward
		}
		switch {
		case in.ClearTrigger:
			it.Trigger = nil
		case in.Trigger != nil:
			if err := validateTrigger(ctx, items, in.Trigger, it.ID); err != nil {
				return err
			}
			it.Trigger = in.Trigger
		}

		// A frequency change can alter which past days count as due.
		Recompute(&it, s.clock.Today())

		if err := items.Update(ctx, itemRecord(&it)); err != nil {
			return err
		}
		out = &it
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
