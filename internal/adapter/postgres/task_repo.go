package postgres

import (
	"context"
	"database/sql"

	"taskhub/internal/domain"
)

// CreateTask inserts a new task row. A duplicate caller-assigned id maps
// to domain.ErrDuplicate.
func (d *DB) CreateTask(ctx context.Context, t *domain.Task) error {
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO todos (id, user_id, task, is_completed, created_at) VALUES ($1, $2, $3, $4, $5);",
		t.ID, t.OwnerID, t.Task, t.IsCompleted, t.CreatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

// GetTask retrieves a task by id.
func (d *DB) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	var t domain.Task
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, user_id, task, is_completed, created_at FROM todos WHERE id = $1;",
		id,
	).Scan(&t.ID, &t.OwnerID, &t.Task, &t.IsCompleted, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTasksByOwner returns all tasks owned by ownerID.
func (d *DB) ListTasksByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, user_id, task, is_completed, created_at FROM todos WHERE user_id = $1 ORDER BY id;", ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := []domain.Task{}
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Task, &t.IsCompleted, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// UpdateTask rewrites the text and completion flag of a task.
func (d *DB) UpdateTask(ctx context.Context, id int64, task string, isCompleted bool) error {
	_, err := d.sql.ExecContext(ctx,
		"UPDATE todos SET task = $1, is_completed = $2 WHERE id = $3;",
		task, isCompleted, id,
	)
	return err
}

// DeleteTask removes a task by id.
func (d *DB) DeleteTask(ctx context.Context, id int64) error {
	_, err := d.sql.ExecContext(ctx, "DELETE FROM todos WHERE id = $1;", id)
	return err
}
