package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gotodo/backend/internal/model"
	"github.com/gotodo/backend/internal/repository"
)

// setFieldRetries bounds the optimistic-concurrency retry loop. Each
// retry re-reads the row, so a conflict only repeats while other writers
// keep landing between our read and our update.
const setFieldRetries = 3

// TodoService mediates all todo access. Every operation keyed by an
// external id checks ownership after the fetch and reports a mismatch as
// ErrNotFound so callers cannot probe for other users' ids.
type TodoService struct {
	todos repository.TodoRepository
}

func NewTodoService(todos repository.TodoRepository) *TodoService {
	return &TodoService{todos: todos}
}

// Create stamps the owner and lifecycle defaults and persists the todo.
func (s *TodoService) Create(ctx context.Context, userID int64, title, description string) (*model.Todo, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	return s.todos.Create(ctx, &model.Todo{
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      model.StatusOpen,
		Priority:    model.PriorityLow,
		Done:        false,
	})
}

func (s *TodoService) ListByUser(ctx context.Context, userID int64) ([]model.Todo, error) {
	return s.todos.ListByUser(ctx, userID)
}

func (s *TodoService) Get(ctx context.Context, userID, id int64) (*model.Todo, error) {
	todo, err := s.todos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if todo.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return todo, nil
}

func (s *TodoService) UpdateStatus(ctx context.Context, userID, id int64, status model.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	return s.setField(ctx, userID, id, func(t *model.Todo) {
		t.Status = status
	})
}

func (s *TodoService) UpdatePriority(ctx context.Context, userID, id int64, priority model.Priority) error {
	if !priority.Valid() {
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, priority)
	}
	return s.setField(ctx, userID, id, func(t *model.Todo) {
		t.Priority = priority
	})
}

func (s *TodoService) UpdateDeadline(ctx context.Context, userID, id int64, deadline time.Time) error {
	return s.setField(ctx, userID, id, func(t *model.Todo) {
		t.Deadline = &deadline
	})
}

func (s *TodoService) UpdateDone(ctx context.Context, userID, id int64, done bool) error {
	return s.setField(ctx, userID, id, func(t *model.Todo) {
		t.Done = done
	})
}

// Delete soft-deletes the todo. The repository statement is scoped by
// owner, so no read-before-write is needed; a foreign id behaves exactly
// like a missing one.
func (s *TodoService) Delete(ctx context.Context, userID, id int64) (bool, error) {
	return s.todos.Delete(ctx, id, userID)
}

// setField runs one read-modify-write of a single logical field under the
// optimistic versioning discipline: the update only succeeds against the
// version we read, otherwise it is retried on a fresh read. Two
// concurrent single-field updates therefore both land, one of them on a
// second attempt.
func (s *TodoService) setField(ctx context.Context, userID, id int64, mutate func(*model.Todo)) error {
	var err error
	for attempt := 0; attempt < setFieldRetries; attempt++ {
		var todo *model.Todo
		todo, err = s.todos.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if todo.UserID != userID {
			return repository.ErrNotFound
		}

		mutate(todo)

		err = s.todos.Update(ctx, todo)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrVersionConflict) {
			return err
		}
	}
	return err
}
