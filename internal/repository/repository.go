// Package repository defines the storage contracts implemented once per
// SQL backend. Adapters map driver-specific failures onto the small error
// taxonomy below; driver error types never cross this boundary.
package repository

import (
	"context"
	"errors"

	"github.com/gotodo/backend/internal/model"
)

var (
	// ErrNotFound means the row does not exist or is soft-deleted.
	ErrNotFound = errors.New("not found")
	// ErrConflict means a constraint (unique, foreign key) was violated.
	ErrConflict = errors.New("constraint violation")
	// ErrUnavailable means the backend could not be reached or failed.
	ErrUnavailable = errors.New("storage unavailable")
	// ErrVersionConflict means an update matched the id but not the
	// expected version; the caller should re-read and retry.
	ErrVersionConflict = errors.New("version conflict")
)

type UserRepository interface {
	// Create inserts the user and returns it with the backend-assigned id
	// and timestamps.
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// Update persists the whole user row keyed by id.
	Update(ctx context.Context, user *model.User) error
	// Delete soft-deletes. Returns false, nil for a missing id.
	Delete(ctx context.Context, id int64) (bool, error)
}

type TodoRepository interface {
	// ListByUser returns all live todos owned by userID, ordered by id.
	ListByUser(ctx context.Context, userID int64) ([]model.Todo, error)
	GetByID(ctx context.Context, id int64) (*model.Todo, error)
	Create(ctx context.Context, todo *model.Todo) (*model.Todo, error)
	// Update replaces the whole row, guarded by the optimistic version:
	// the statement matches id and todo.Version and bumps the stored
	// version. A stale version yields ErrVersionConflict.
	Update(ctx context.Context, todo *model.Todo) error
	// Delete soft-deletes the todo if it is owned by userID. Returns
	// false, nil when nothing matched.
	Delete(ctx context.Context, id, userID int64) (bool, error)
}

// Store bundles the repositories of one backend. The backend is chosen
// once at startup from configuration.
type Store interface {
	Users() UserRepository
	Todos() TodoRepository
	EnsureSchema(ctx context.Context) error
	Close()
}
