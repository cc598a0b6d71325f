package engine

import (
	"fmt"
	"strings"

	"tend/internal/clock"
)

type ItemKind string

const (
	KindRitual ItemKind = "ritual"
	KindHabit  ItemKind = "habit"
)

func (k ItemKind) IsValid() bool {
	switch k {
	case KindRitual, KindHabit:
		return true
	default:
		return false
	}
}

type TriggerKind string

const (
	TriggerTime  TriggerKind = "time"
	TriggerHabit TriggerKind = "habit"
)

// Trigger is the due-condition for an item: either a wall-clock time on
// scheduled days, or "immediately after another item completes". The
// habit variant holds a weak reference by id, never an owning pointer,
// so deletion cleanup is a clear-field pass over both collections.
type Trigger struct {
	Kind TriggerKind

	// Time variant: HH:MM.
	Time string

	// Habit variant.
	HabitID   string
	HabitName string
}

func TimeTrigger(hhmm string) (*Trigger, error) {
	hhmm = strings.TrimSpace(hhmm)
	var h, m int
	if _, err := fmt.Sscanf(hhmm, "%d:%d", &h, &m); err != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return nil, fmt.Errorf("invalid time %q (want HH:MM)", hhmm)
	}
	return &Trigger{Kind: TriggerTime, Time: fmt.Sprintf("%02d:%02d", h, m)}, nil
}

func HabitTrigger(id, name string) *Trigger {
	return &Trigger{Kind: TriggerHabit, HabitID: id, HabitName: name}
}

func (t *Trigger) Describe() string {
	if t == nil {
		return "none"
	}
	switch t.Kind {
	case TriggerTime:
		return "at " + t.Time
	case TriggerHabit:
		return "after " + t.HabitName
	default:
		return "none"
	}
}

// Item is a scheduled recurring item. Rituals and promoted habits share
// the shape and the id namespace; Kind tags which collection it lives in.
type Item struct {
	ID        string
	Kind      ItemKind
	Name      string
	Trigger   *Trigger
	Frequency Weekdays
	Reward    string

	// Derived, recomputed after every completion or date change.
	Streak        int
	FrozenStreaks int

	// SkipUsed is a legacy single-use-skip flag. It round-trips through
	// storage but plays no role in the streak algorithm.
	SkipUsed bool

	CompletedDates []clock.Date
	LastCompleted  clock.Date
	CreatedAt      clock.Date

	// BecameHabitAt is set only while Kind == KindHabit.
	BecameHabitAt clock.Date
}

// EarliestCompletion is the streak walk's lower bound.
func (it *Item) EarliestCompletion() (clock.Date, bool) {
	if len(it.CompletedDates) == 0 {
		return "", false
	}
	min := it.CompletedDates[0]
	for _, d := range it.CompletedDates[1:] {
		if d.Before(min) {
			min = d
		}
	}
	return min, true
}

// CompletedOn reports whether the item was marked done on the given day.
func (it *Item) CompletedOn(d clock.Date) bool {
	for _, c := range it.CompletedDates {
		if c == d {
			return true
		}
	}
	return false
}

// Task is a one-off dated item, outside the streak machinery.
type Task struct {
	ID        string
	Name      string
	Date      clock.Date
	Completed bool
	CreatedAt clock.Date
}

// Achievement is a badge with an unlock predicate evaluated over the
// snapshot. Progress fields are used only by progress-bearing badges.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Unlocked    bool
	UnlockedAt  clock.Date
	Progress    int
	MaxProgress int
}

// Snapshot is the full application state handed to collaborators after
// any mutating operation. Collaborators diff against their own prior
// copy; no partially-updated snapshot is ever observable.
type Snapshot struct {
	Rituals      []Item
	Habits       []Item
	Tasks        []Task
	Achievements []Achievement
}

// Items returns rituals and habits as one list (shared id namespace).
func (s *Snapshot) Items() []Item {
	out := make([]Item, 0, len(s.Rituals)+len(s.Habits))
	out = append(out, s.Rituals...)
	out = append(out, s.Habits...)
	return out
}

// FindItem looks an item up by id across both collections.
func (s *Snapshot) FindItem(id string) *Item {
	for i := range s.Rituals {
		if s.Rituals[i].ID == id {
			return &s.Rituals[i]
		}
	}
	for i := range s.Habits {
		if s.Habits[i].ID == id {
			return &s.Habits[i]
		}
	}
	return nil
}
