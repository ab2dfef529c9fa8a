package sqlite

import (
	"todo/internal/logging"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	if err := scanner.Scan(&task.ID, &task.Name); err != nil {
		return nil, err
	}
	return task, nil
}

// ScanTasks scans every row into a task. A row that fails to decode is
// logged and skipped; only an iteration error aborts the scan.
func ScanTasks(rows Rows) ([]*Task, error) {
	tasks := []*Task{}
	row := 0
	for rows.Next() {
		row++
		task, err := ScanTask(rows)
		if err != nil {
			logging.Logger().Error("error reading todo", "row", row, "err", err)
			continue
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
