package mysql

import (
	"context"
	"database/sql"
	"time"

	"github.com/gotodo/backend/internal/model"
	"github.com/gotodo/backend/internal/repository"
)

type TodoRepository struct {
	db *sql.DB
}

const todoColumns = `id, user_id, title, description, status, priority, deadline, done, version, created_at, updated_at, deleted_at`

// ListByUser returns live todos ordered by id ascending.
func (r *TodoRepository) ListByUser(ctx context.Context, userID int64) ([]model.Todo, error) {
	query := `
		SELECT ` + todoColumns + `
		FROM todos
		WHERE user_id = ? AND deleted_at IS NULL
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var list []model.Todo
	for rows.Next() {
		var t model.Todo
		if err := scanTodo(rows.Scan, &t); err != nil {
			return nil, mapError(err)
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	if list == nil {
		list = []model.Todo{}
	}
	return list, nil
}

func (r *TodoRepository) GetByID(ctx context.Context, id int64) (*model.Todo, error) {
	query := `
		SELECT ` + todoColumns + `
		FROM todos
		WHERE id = ? AND deleted_at IS NULL
	`
	var t model.Todo
	if err := scanTodo(r.db.QueryRowContext(ctx, query, id).Scan, &t); err != nil {
		return nil, mapError(err)
	}
	return &t, nil
}

func (r *TodoRepository) Create(ctx context.Context, todo *model.Todo) (*model.Todo, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	query := `
		INSERT INTO todos (user_id, title, description, status, priority, deadline, done, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query,
		todo.UserID,
		todo.Title,
		todo.Description,
		todo.Status,
		todo.Priority,
		todo.Deadline,
		todo.Done,
		now,
		now,
	)
	if err != nil {
		return nil, mapError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, mapError(err)
	}
	return r.GetByID(ctx, id)
}

// Update replaces the whole row, matching the caller's version and
// bumping the stored one. A stale version yields ErrVersionConflict.
func (r *TodoRepository) Update(ctx context.Context, todo *model.Todo) error {
	query := `
		UPDATE todos
		SET title = ?, description = ?, status = ?, priority = ?,
			deadline = ?, done = ?, version = version + 1, updated_at = ?
		WHERE id = ? AND version = ? AND deleted_at IS NULL
	`
	res, err := r.db.ExecContext(ctx, query,
		todo.Title,
		todo.Description,
		todo.Status,
		todo.Priority,
		todo.Deadline,
		todo.Done,
		time.Now().UTC().Truncate(time.Microsecond),
		todo.ID,
		todo.Version,
	)
	if err != nil {
		return mapError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if affected == 0 {
		return repository.ErrVersionConflict
	}
	return nil
}

func (r *TodoRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	query := `
		UPDATE todos
		SET deleted_at = ?
		WHERE id = ? AND user_id = ? AND deleted_at IS NULL
	`
	res, err := r.db.ExecContext(ctx, query, time.Now().UTC().Truncate(time.Microsecond), id, userID)
	if err != nil {
		return false, mapError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, mapError(err)
	}
	return affected > 0, nil
}

func scanTodo(scan func(dest ...any) error, t *model.Todo) error {
	return scan(
		&t.ID,
		&t.UserID,
		&t.Title,
		&t.Description,
		&t.Status,
		&t.Priority,
		&t.Deadline,
		&t.Done,
		&t.Version,
		&t.CreatedAt,
		&t.UpdatedAt,
		&t.DeletedAt,
	)
}
