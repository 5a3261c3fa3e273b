package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gotodo/backend/internal/model"
	"github.com/gotodo/backend/internal/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
		INSERT INTO users (email, username, derived_key, salt, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, email, username, derived_key, salt, created_at, updated_at, deleted_at
	`
	var stored model.User
	err := r.pool.QueryRow(ctx, query, user.Email, user.Username, user.DerivedKey, user.Salt).Scan(
		&stored.ID,
		&stored.Email,
		&stored.Username,
		&stored.DerivedKey,
		&stored.Salt,
		&stored.CreatedAt,
		&stored.UpdatedAt,
		&stored.DeletedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &stored, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `
		SELECT id, email, username, derived_key, salt, created_at, updated_at, deleted_at
		FROM users
		WHERE id = $1 AND deleted_at IS NULL
	`
	return r.scanUser(ctx, query, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT id, email, username, derived_key, salt, created_at, updated_at, deleted_at
		FROM users
		WHERE email = $1 AND deleted_at IS NULL
	`
	return r.scanUser(ctx, query, email)
}

func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	query := `
		UPDATE users
		SET email = $1, username = $2, derived_key = $3, salt = $4, updated_at = NOW()
		WHERE id = $5 AND deleted_at IS NULL
	`
	tag, err := r.pool.Exec(ctx, query, user.Email, user.Username, user.DerivedKey, user.Salt, user.ID)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `
		UPDATE users
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return false, mapError(err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *UserRepository) scanUser(ctx context.Context, query string, arg any) (*model.User, error) {
	var user model.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.DerivedKey,
		&user.Salt,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.DeletedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}
