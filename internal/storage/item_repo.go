package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so repos can run inside
// WithTx without a parallel API.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type ItemRepo struct {
	db DBTX
}

func NewItemRepo(db DBTX) *ItemRepo {
	return &ItemRepo{db: db}
}

const itemColumns = `id, kind, name,
	trigger_kind, trigger_time, trigger_habit_id, trigger_habit_name,
	frequency, reward, streak, frozen_streaks, skip_used,
	last_completed, created_at, became_habit_at`

func (r *ItemRepo) Insert(ctx context.Context, it *Item) error {
	freq, err := json.Marshal(it.Frequency)
	if err != nil {
		return fmt.Errorf("marshal frequency: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO items (`+itemColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, it.ID, it.Kind, it.Name,
		nullable(it.TriggerKind), nullable(it.TriggerTime), nullable(it.TriggerHabitID), nullable(it.TriggerHabitName),
		string(freq), nullable(it.Reward), it.Streak, it.FrozenStreaks, boolToInt(it.SkipUsed),
		nullable(it.LastCompleted), it.CreatedAt, nullable(it.BecameHabitAt))
	if err != nil {
		return fmt.Errorf("item insert: %w", err)
	}
	return nil
}

func (r *ItemRepo) Update(ctx context.Context, it *Item) error {
	freq, err := json.Marshal(it.Frequency)
	if err != nil {
		return fmt.Errorf("marshal frequency: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		UPDATE items SET
			kind = ?, name = ?,
			trigger_kind = ?, trigger_time = ?, trigger_habit_id = ?, trigger_habit_name = ?,
			frequency = ?, reward = ?, streak = ?, frozen_streaks = ?, skip_used = ?,
			last_completed = ?, became_habit_at = ?
		WHERE id = ?
	`, it.Kind, it.Name,
		nullable(it.TriggerKind), nullable(it.TriggerTime), nullable(it.TriggerHabitID), nullable(it.TriggerHabitName),
		string(freq), nullable(it.Reward), it.Streak, it.FrozenStreaks, boolToInt(it.SkipUsed),
		nullable(it.LastCompleted), nullable(it.BecameHabitAt), it.ID)
	if err != nil {
		return fmt.Errorf("item update: %w", err)
	}
	return nil
}

func (r *ItemRepo) Get(ctx context.Context, id string) (*Item, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id = ?`, id)
	it, err := scanItem(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("item get: %w", err)
	}
	if err := r.loadCompletions(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

// GetByName looks an item up by display label; names are unique across
// both collections.
func (r *ItemRepo) GetByName(ctx context.Context, name string) (*Item, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE name = ? COLLATE NOCASE`, name)
	it, err := scanItem(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("item get by name: %w", err)
	}
	if err := r.loadCompletions(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (r *ItemRepo) ListAll(ctx context.Context) ([]Item, error) {
	return r.list(ctx, `SELECT `+itemColumns+` FROM items ORDER BY created_at ASC, name ASC`)
}

func (r *ItemRepo) ListByKind(ctx context.Context, kind string) ([]Item, error) {
	return r.list(ctx, `SELECT `+itemColumns+` FROM items WHERE kind = ? ORDER BY created_at ASC, name ASC`, kind)
}

// ListDependents returns items whose habit trigger references the given
// item id.
func (r *ItemRepo) ListDependents(ctx context.Context, id string) ([]Item, error) {
	return r.list(ctx, `SELECT `+itemColumns+` FROM items WHERE trigger_habit_id = ?`, id)
}

// ClearTriggersReferencing blanks the trigger of every item pointing at
// the given id. Dependents become trigger-less, never deleted.
func (r *ItemRepo) ClearTriggersReferencing(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE items
		SET trigger_kind = NULL, trigger_time = NULL, trigger_habit_id = NULL, trigger_habit_name = NULL
		WHERE trigger_habit_id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("clear triggers: %w", err)
	}
	return nil
}

func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM item_completions WHERE item_id = ?`, id); err != nil {
		return fmt.Errorf("item completions delete: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id); err != nil {
		return fmt.Errorf("item delete: %w", err)
	}
	return nil
}

// AddCompletion records a completion date; re-completing the same day
// is harmless (set semantics).
func (r *ItemRepo) AddCompletion(ctx context.Context, id string, date string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO item_completions (item_id, completed_on) VALUES (?, ?)
		ON CONFLICT(item_id, completed_on) DO NOTHING
	`, id, date)
	if err != nil {
		return fmt.Errorf("completion insert: %w", err)
	}
	return nil
}

func (r *ItemRepo) list(ctx context.Context, query string, args ...any) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("item list: %w", err)
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("item scan: %w", err)
		}
		out = append(out, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("item rows: %w", err)
	}
	for i := range out {
		if err := r.loadCompletions(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *ItemRepo) loadCompletions(ctx context.Context, it *Item) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT completed_on FROM item_completions WHERE item_id = ? ORDER BY completed_on ASC
	`, it.ID)
	if err != nil {
		return fmt.Errorf("completions list: %w", err)
	}
	defer rows.Close()

	it.CompletedDates = nil
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return fmt.Errorf("completion scan: %w", err)
		}
		it.CompletedDates = append(it.CompletedDates, d)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("completion rows: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*Item, error) {
	var it Item
	var trigKind, trigTime, trigHabitID, trigHabitName sql.NullString
	var reward, lastCompleted, becameHabitAt sql.NullString
	var freq string
	var skipUsed int

	err := row.Scan(&it.ID, &it.Kind, &it.Name,
		&trigKind, &trigTime, &trigHabitID, &trigHabitName,
		&freq, &reward, &it.Streak, &it.FrozenStreaks, &skipUsed,
		&lastCompleted, &it.CreatedAt, &becameHabitAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(freq), &it.Frequency); err != nil {
		return nil, fmt.Errorf("unmarshal frequency: %w", err)
	}
	it.TriggerKind = trigKind.String
	it.TriggerTime = trigTime.String
	it.TriggerHabitID = trigHabitID.String
	it.TriggerHabitName = trigHabitName.String
	it.Reward = reward.String
	it.LastCompleted = lastCompleted.String
	it.BecameHabitAt = becameHabitAt.String
	it.SkipUsed = skipUsed != 0
	return &it, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
