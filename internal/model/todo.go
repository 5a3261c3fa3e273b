package model

import "time"

// Status is the lifecycle state of a todo.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Priority orders todos by urgency.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Todo is a to-do item owned by a single user. ID is assigned by the
// storage backend on create. Version is the optimistic-concurrency
// counter bumped by every successful update.
type Todo struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
	Deadline    *time.Time `json:"deadline"`
	Done        bool       `json:"done"`
	Version     int64      `json:"version"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DeletedAt   *time.Time `json:"-"`
}

type CreateTodoRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
}

type UpdateStatusRequest struct {
	Status Status `json:"status" binding:"required"`
}

type UpdatePriorityRequest struct {
	Priority Priority `json:"priority" binding:"required"`
}

type UpdateDeadlineRequest struct {
	Deadline time.Time `json:"deadline" binding:"required"`
}

type UpdateDoneRequest struct {
	Done *bool `json:"done" binding:"required"`
}
