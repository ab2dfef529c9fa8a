package services

import (
	"context"

	"todo/internal/config"
	"todo/internal/domain"
	"todo/internal/errors"
	"todo/internal/logging"
	"todo/internal/repository/sqlite"
	"todo/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          sqlite.Repository
	mapper        *domain.TaskMapper
	taskValidator *validation.TaskValidator
}

// NewTaskService creates a new TaskService instance. A nil cfg uses the
// default validation limits.
func NewTaskService(repo sqlite.Repository, cfg *config.Config) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewTaskMapper(),
		taskValidator: validation.NewTaskValidatorWithConfig(cfg),
	}
}

// AddTask creates a new task with the given name. The name is stored as typed.
func (t *taskServiceImpl) AddTask(ctx context.Context, name string) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskName(name); err != nil {
		message := "invalid task name"
		if ve, ok := err.(*validation.ValidationError); ok {
			message = ve.GetUserFriendlyMessage()
		}
		return nil, errors.NewValidationError(message, err)
	}

	dbTask := t.mapper.ToDatabase(domain.NewTask(name))
	if err := t.repo.InsertTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	task := t.mapper.FromDatabase(dbTask)
	logging.Logger().Debug("added todo", "id", task.ID)
	return &task, nil
}

// ListTasks retrieves all tasks in display order
func (t *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	dbTasks, err := t.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return t.mapper.FromDatabaseSlice(dbTasks), nil
}

// CompleteTask resolves raw against a fresh listing and deletes that task
func (t *taskServiceImpl) CompleteTask(ctx context.Context, raw string) (*Completion, error) {
	// Reject malformed input before touching storage
	position, err := ParsePosition(raw)
	if err != nil {
		return nil, err
	}

	tasks, err := t.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	id, err := NewPositionIndex(tasks).ResolvePosition(position)
	if err != nil {
		return nil, err
	}

	removed, err := t.repo.DeleteTask(ctx, id)
	if err != nil {
		return nil, err
	}

	logging.Logger().Debug("completed todo", "position", position, "id", id, "rows", removed)
	return &Completion{
		Position:    position,
		Task:        tasks[position-1],
		RowsRemoved: removed,
	}, nil
}
