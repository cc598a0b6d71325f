package storage

import (
	"context"
	"fmt"
)

type AchievementRepo struct {
	db DBTX
}

func NewAchievementRepo(db DBTX) *AchievementRepo {
	return &AchievementRepo{db: db}
}

// Seed inserts achievement definitions that are not present yet,
// leaving unlock state of existing rows alone.
func (r *AchievementRepo) Seed(ctx context.Context, defs []Achievement) error {
	for _, a := range defs {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO achievements (id, name, description, icon, unlocked, unlocked_at, progress, max_progress)
			VALUES (?, ?, ?, ?, 0, NULL, 0, ?)
			ON CONFLICT(id) DO NOTHING
		`, a.ID, a.Name, a.Description, a.Icon, a.MaxProgress)
		if err != nil {
			return fmt.Errorf("achievement seed: %w", err)
		}
	}
	return nil
}

func (r *AchievementRepo) ListAll(ctx context.Context) ([]Achievement, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, icon, unlocked, unlocked_at, progress, max_progress
		FROM achievements ORDER BY rowid ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("achievement list: %w", err)
	}
	defer rows.Close()

	var out []Achievement
	for rows.Next() {
		var a Achievement
		var unlocked int
		var unlockedAt *string
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Icon, &unlocked, &unlockedAt, &a.Progress, &a.MaxProgress); err != nil {
			return nil, fmt.Errorf("achievement scan: %w", err)
		}
		a.Unlocked = unlocked != 0
		if unlockedAt != nil {
			a.UnlockedAt = *unlockedAt
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("achievement rows: %w", err)
	}
	return out, nil
}

func (r *AchievementRepo) Update(ctx context.Context, a *Achievement) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE achievements
		SET unlocked = ?, unlocked_at = ?, progress = ?
		WHERE id = ?
	`, boolToInt(a.Unlocked), nullable(a.UnlockedAt), a.Progress, a.ID)
	if err != nil {
		return fmt.Errorf("achievement update: %w", err)
	}
	return nil
}
