package engine

import (
	"context"

	"tend/internal/clock"
	"tend/internal/storage"
)

// Dev-mode date controls. The simulated date only affects what Today()
// returns; it is persisted in settings because each CLI invocation is a
// fresh process. Every change re-derives streaks so the views stay
// consistent with the new "today".

func (s *Service) SetDevMode(ctx context.Context, enabled bool) (clock.Date, error) {
	settings := storage.NewSettingsRepo(s.db)
	if enabled {
		today := clock.System{}.Today()
		if err := settings.Set(ctx, storage.SettingDevMode, "1"); err != nil {
			return "", err
		}
		if err := settings.Set(ctx, storage.SettingSimDate, string(today)); err != nil {
			return "", err
		}
		s.clock = clock.Fixed(today)
		s.devMode = true
	} else {
		if err := settings.Delete(ctx, storage.SettingDevMode); err != nil {
			return "", err
		}
		if err := settings.Delete(ctx, storage.SettingSimDate); err != nil {
			return "", err
		}
		s.clock = clock.System{}
		s.devMode = false
	}
	if err := s.RecomputeAll(ctx); err != nil {
		return "", err
	}
	return s.clock.Today(), nil
}

func (s *Service) AdvanceDay(ctx context.Context) (clock.Date, error) {
	return s.shiftDay(ctx, 1)
}

func (s *Service) RetreatDay(ctx context.Context) (clock.Date, error) {
	return s.shiftDay(ctx, -1)
}

func (s *Service) shiftDay(ctx context.Context, delta int) (clock.Date, error) {
	if !s.devMode {
		return "", ErrNotDevMode
	}
	next := s.clock.Today().AddDays(delta)
	if err := storage.NewSettingsRepo(s.db).Set(ctx, storage.SettingSimDate, string(next)); err != nil {
		return "", err
	}
	s.clock = clock.Fixed(next)
	if err := s.RecomputeAll(ctx); err != nil {
		return "", err
	}
	s.announceAchievements(ctx)
	return next, nil
}
