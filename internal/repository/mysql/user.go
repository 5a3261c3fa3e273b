package mysql

import (
	"context"
	"database/sql"
	"time"

	"github.com/gotodo/backend/internal/model"
	"github.com/gotodo/backend/internal/repository"
)

type UserRepository struct {
	db *sql.DB
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	query := `
		INSERT INTO users (email, username, derived_key, salt, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query, user.Email, user.Username, user.DerivedKey, user.Salt, now, now)
	if err != nil {
		return nil, mapError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, mapError(err)
	}
	return r.GetByID(ctx, id)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `
		SELECT id, email, username, derived_key, salt, created_at, updated_at, deleted_at
		FROM users
		WHERE id = ? AND deleted_at IS NULL
	`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT id, email, username, derived_key, salt, created_at, updated_at, deleted_at
		FROM users
		WHERE email = ? AND deleted_at IS NULL
	`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	query := `
		UPDATE users
		SET email = ?, username = ?, derived_key = ?, salt = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`
	res, err := r.db.ExecContext(ctx, query,
		user.Email, user.Username, user.DerivedKey, user.Salt,
		time.Now().UTC().Truncate(time.Microsecond), user.ID,
	)
	if err != nil {
		return mapError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `
		UPDATE users
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`
	res, err := r.db.ExecContext(ctx, query, time.Now().UTC().Truncate(time.Microsecond), id)
	if err != nil {
		return false, mapError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, mapError(err)
	}
	return affected > 0, nil
}

func (r *UserRepository) scanUser(row *sql.Row) (*model.User, error) {
	var user model.User
	err := row.Scan(
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
