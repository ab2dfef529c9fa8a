package sqlite

import (
	"context"
	"database/sql"

	"todo/internal/errors"
	"todo/internal/logging"
	"todo/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for todo storage operations
type Repository interface {
	// InsertTask appends a task and sets its ID
	InsertTask(ctx context.Context, task *Task) error

	// ListTasks returns every task in ascending ID order. Rows that fail
	// to decode are logged and left out.
	ListTasks(ctx context.Context) ([]*Task, error)

	// DeleteTask removes the task with the given ID and returns the
	// number of rows removed (0 when there was none)
	DeleteTask(ctx context.Context, id int64) (int64, error)

	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New opens or creates the SQLite file at dbPath and ensures the schema
func New(ctx context.Context, dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageUnavailableError(dbPath, err)
	}

	// One connection: :memory: stays a single database and writes are serialized.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.NewStorageUnavailableError(dbPath, err)
	}

	if err := migrations.Run(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewStorageUnavailableError(dbPath, err)
	}

	logging.Logger().Debug("opened todo store", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// InsertTask creates a new task
func (r *SQLiteRepository) InsertTask(ctx context.Context, task *Task) error {
	query := `INSERT INTO todo (name) VALUES (?)`
	id, err := ExecuteWithLastInsertID(ctx, r.db, "insert todo", query, task.Name)
	if err != nil {
		return err
	}
	task.ID = id
	return nil
}

// ListTasks retrieves all tasks
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := `SELECT id, name FROM todo ORDER BY id ASC`
	return QueryMultiple(ctx, r.db, "list todos", query, ScanTasks)
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) (int64, error) {
	query := `DELETE FROM todo WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, "delete todo", query, id)
}
