package sqlite

import (
	"context"
	"database/sql"

	"todo/internal/errors"
)

// HandleReadError converts query errors to structured app errors
func HandleReadError(operation string, err error) error {
	return errors.NewReadFailedError(operation, err)
}

// HandleWriteError converts exec errors to structured app errors
func HandleWriteError(operation string, err error) error {
	return errors.NewWriteFailedError(operation, err)
}

// ExecuteWithLastInsertID executes a query and returns the last insert ID
func ExecuteWithLastInsertID(ctx context.Context, db *sql.DB, operation string, query string, args ...interface{}) (int64, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, HandleWriteError(operation, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, HandleWriteError(operation+": last insert id", err)
	}

	return id, nil
}

// ExecuteWithRowsAffected executes a query and returns how many rows it touched.
// Zero rows is not an error.
func ExecuteWithRowsAffected(ctx context.Context, db *sql.DB, operation string, query string, args ...interface{}) (int64, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, HandleWriteError(operation, err)
	}

	return CountRowsAffected(result, operation)
}

// CountRowsAffected reads the affected-row count of a result
func CountRowsAffected(result sql.Result, operation string) (int64, error) {
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, HandleWriteError(operation+": rows affected", err)
	}
	return rows, nil
}

// QueryMultiple executes a query that returns multiple rows and scans them
func QueryMultiple[T any](ctx context.Context, db *sql.DB, operation string, query string, scanFunc func(Rows) ([]*T, error), args ...interface{}) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, HandleReadError(operation, err)
	}
	defer rows.Close()

	results, err := scanFunc(rows)
	if err != nil {
		return nil, HandleReadError(operation, err)
	}

	return results, nil
}
