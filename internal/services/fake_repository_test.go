package services

import (
	"context"
	"errors"

	"todo/internal/repository/sqlite"

	apperrors "todo/internal/errors"
)

// fakeRepository is an in-memory sqlite.Repository for service tests
type fakeRepository struct {
	tasks   []*sqlite.Task
	nextID  int64
	listErr error
	failAdd bool
	deletes []int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1}
}

func (f *fakeRepository) InsertTask(ctx context.Context, task *sqlite.Task) error {
	if f.failAdd {
		return apperrors.NewWriteFailedError("insert todo", errors.New("disk full"))
	}
	task.ID = f.nextID
	f.nextID++
	f.tasks = append(f.tasks, &sqlite.Task{ID: task.ID, Name: task.Name})
	return nil
}

func (f *fakeRepository) ListTasks(ctx context.Context) ([]*sqlite.Task, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*sqlite.Task, 0, len(f.tasks))
	for _, task := range f.tasks {
		copied := *task
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeRepository) DeleteTask(ctx context.Context, id int64) (int64, error) {
	f.deletes = append(f.deletes, id)
	for i, task := range f.tasks {
		if task.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeRepository) Close() error {
	return nil
}
