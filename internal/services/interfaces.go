package services

import (
	"context"

	"todo/internal/domain"
)

// Completion describes the outcome of completing the task at a display position
type Completion struct {
	Position    int
	Task        *domain.Task
	RowsRemoved int64
}

// TaskService defines the todo operations the CLI drives
type TaskService interface {
	// AddTask validates name and appends it to the list
	AddTask(ctx context.Context, name string) (*domain.Task, error)

	// ListTasks returns every task in display order
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// CompleteTask removes the task at the 1-based display position raw
	CompleteTask(ctx context.Context, raw string) (*Completion, error)
}
