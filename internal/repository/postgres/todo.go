package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gotodo/backend/internal/model"
	"github.com/gotodo/backend/internal/repository"
)

type TodoRepository struct {
	pool *pgxpool.Pool
}

const todoColumns = `id, user_id, title, description, status, priority, deadline, done, version, created_at, updated_at, deleted_at`

// ListByUser returns live todos ordered by id ascending.
func (r *TodoRepository) ListByUser(ctx context.Context, userID int64) ([]model.Todo, error) {
	query := `
		SELECT ` + todoColumns + `
		FROM todos
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query, userID)
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
		WHERE id = $1 AND deleted_at IS NULL
	`
	var t model.Todo
	if err := scanTodo(r.pool.QueryRow(ctx, query, id).Scan, &t); err != nil {
		return nil, mapError(err)
	}
	return &t, nil
}

func (r *TodoRepository) Create(ctx context.Context, todo *model.Todo) (*model.Todo, error) {
	query := `
		INSERT INTO todos (user_id, title, description, status, priority, deadline, done, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + todoColumns + `
	`
	var stored model.Todo
	err := scanTodo(r.pool.QueryRow(ctx, query,
		todo.UserID,
		todo.Title,
		todo.Description,
		todo.Status,
		todo.Priority,
		todo.Deadline,
		todo.Done,
	).Scan, &stored)
	if err != nil {
		return nil, mapError(err)
	}
	return &stored, nil
}

// Update replaces the whole row. The statement only matches the caller's
// version, so a concurrent writer that got there first makes this a
// no-op reported as ErrVersionConflict.
func (r *TodoRepository) Update(ctx context.Context, todo *model.Todo) error {
	query := `
		UPDATE todos
		SET title = $1, description = $2, status = $3, priority = $4,
			deadline = $5, done = $6, version = version + 1, updated_at = NOW()
		WHERE id = $7 AND version = $8 AND deleted_at IS NULL
	`
	tag, err := r.pool.Exec(ctx, query,
		todo.Title,
		todo.Description,
		todo.Status,
		todo.Priority,
		todo.Deadline,
		todo.Done,
		todo.ID,
		todo.Version,
	)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrVersionConflict
	}
	return nil
}

func (r *TodoRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	query := `
		UPDATE todos
		SET deleted_at = NOW()
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
	`
	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return false, mapError(err)
	}
	return tag.RowsAffected() > 0, nil
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
