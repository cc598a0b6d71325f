package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type TaskRepo struct {
	db DBTX
}

func NewTaskRepo(db DBTX) *TaskRepo {
	return &TaskRepo{db: db}
}

func (r *TaskRepo) Insert(ctx context.Context, t *Task) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (id, name, date, completed, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, t.ID, t.Name, t.Date, boolToInt(t.Completed), t.CreatedAt)
	if err != nil {
		return fmt.Errorf("task insert: %w", err)
	}
	return nil
}

func (r *TaskRepo) Get(ctx context.Context, id string) (*Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, date, completed, created_at FROM tasks WHERE id = ?
	`, id)
	return scanTask(row)
}

func (r *TaskRepo) GetByName(ctx context.Context, name string) (*Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, date, completed, created_at FROM tasks WHERE name = ? COLLATE NOCASE
	`, name)
	return scanTask(row)
}

func (r *TaskRepo) ListAll(ctx context.Context) ([]Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, date, completed, created_at FROM tasks ORDER BY date ASC, created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("task list: %w", err)
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		var t Task
		var completed int
		if err := rows.Scan(&t.ID, &t.Name, &t.Date, &completed, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("task scan: %w", err)
		}
		t.Completed = completed != 0
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("task rows: %w", err)
	}
	return out, nil
}

func (r *TaskRepo) SetCompleted(ctx context.Context, id string, completed bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET completed = ? WHERE id = ?`, boolToInt(completed), id)
	if err != nil {
		return fmt.Errorf("task set completed: %w", err)
	}
	return nil
}

func (r *TaskRepo) Rename(ctx context.Context, id string, name string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("task rename: %w", err)
	}
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("task delete: %w", err)
	}
	return nil
}

func scanTask(row *sql.Row) (*Task, error) {
	var t Task
	var completed int
	if err := row.Scan(&t.ID, &t.Name, &t.Date, &completed, &t.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("task get: %w", err)
	}
	t.Completed = completed != 0
	return &t, nil
}
