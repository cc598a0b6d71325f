package engine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"tend/internal/clock"
	"tend/internal/notify"
	"tend/internal/storage"
)

// Service orchestrates the streak core over sqlite repos. The clock and
// notifier are injected so completion math is deterministic under test.
type Service struct {
	db       *sql.DB
	clock    clock.Clock
	notifier notify.Notifier
	devMode  bool
}

func NewService(db *sql.DB, clk clock.Clock, notifier notify.Notifier) *Service {
	if clk == nil {
		clk = clock.System{}
	}
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &Service{db: db, clock: clk, notifier: notifier}
}

// NewServiceFromSettings builds a Service whose clock honors the
// persisted dev-mode simulated date, and seeds achievement definitions.
func NewServiceFromSettings(ctx context.Context, db *sql.DB, notifier notify.Notifier) (*Service, error) {
	settings := storage.NewSettingsRepo(db)
	s := NewService(db, nil, notifier)

	dm, err := settings.Get(ctx, storage.SettingDevMode)
	if err != nil {
		return nil, err
	}
	if dm == "1" {
		raw, err := settings.Get(ctx, storage.SettingSimDate)
		if err != nil {
			return nil, err
		}
		if d, err := clock.ParseDate(raw); err == nil {
			s.clock = clock.Fixed(d)
			s.devMode = true
		}
	}

	if err := storage.NewAchievementRepo(db).Seed(ctx, SeedAchievements()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) Clock() clock.Clock { return s.clock }
func (s *Service) DevMode() bool      { return s.devMode }
func (s *Service) Today() clock.Date  { return s.clock.Today() }

// DuplicateNameError is returned when a name collides with an existing
// scheduled item.
type DuplicateNameError struct {
	Name string
}

func (e DuplicateNameError) Error() string {
	return fmt.Sprintf("an item named %q already exists", e.Name)
}

// TriggerConflictError is returned when a habit trigger's source is
// already the trigger of another item. A given item may be referenced
// as a trigger source by at most one other item at a time.
type TriggerConflictError struct {
	SourceName    string
	DependentName string
}

func (e TriggerConflictError) Error() string {
	return fmt.Sprintf("%q already triggers %q", e.SourceName, e.DependentName)
}

func normalizeName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", errors.New("name is required")
	}
	return n, nil
}

// validateTrigger checks a habit trigger's weak reference: the source
// must exist and must not already have a dependent (other than the item
// being edited, identified by selfID).
func validateTrigger(ctx context.Context, items *storage.ItemRepo, trig *Trigger, selfID string) error {
	if trig == nil || trig.Kind != TriggerHabit {
		return nil
	}
	source, err := items.Get(ctx, trig.HabitID)
	if err != nil {
		return err
	}
	if source == nil {
		return fmt.Errorf("trigger source %q not found", trig.HabitName)
	}
	trig.HabitName = source.Name

	deps, err := items.ListDependents(ctx, trig.HabitID)
	if err != nil {
		return err
	}
	for _, d := range deps {
		if d.ID != selfID {
			return TriggerConflictError{SourceName: source.Name, DependentName: d.Name}
		}
	}
	return nil
}
