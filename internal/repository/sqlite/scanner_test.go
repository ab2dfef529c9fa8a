package sqlite

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"todo/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScanner implements the Scanner interface for testing
type TestScanner struct {
	data []interface{}
	err  error
}

func (ts *TestScanner) Scan(dest ...interface{}) error {
	if ts.err != nil {
		return ts.err
	}

	if len(dest) != len(ts.data) {
		return errors.New("mismatch in number of destinations")
	}

	for i, d := range dest {
		switch v := d.(type) {
		case *int64:
			*v = ts.data[i].(int64)
		case *string:
			*v = ts.data[i].(string)
		}
	}

	return nil
}

// TestRows implements the Rows interface over a fixed set of scanners
type TestRows struct {
	rows    []*TestScanner
	current int
	err     error
}

func (tr *TestRows) Next() bool {
	if tr.current >= len(tr.rows) {
		return false
	}
	tr.current++
	return true
}

func (tr *TestRows) Scan(dest ...interface{}) error {
	return tr.rows[tr.current-1].Scan(dest...)
}

func (tr *TestRows) Err() error {
	return tr.err
}

func TestScanTask(t *testing.T) {
	tests := []struct {
		name        string
		scanner     *TestScanner
		expected    *Task
		expectError bool
	}{
		{
			name:     "Valid task",
			scanner:  &TestScanner{data: []interface{}{int64(7), "buy milk"}},
			expected: &Task{ID: 7, Name: "buy milk"},
		},
		{
			name:        "Scan error",
			scanner:     &TestScanner{err: errors.New("converting NULL to string is unsupported")},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := ScanTask(tt.scanner)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, task)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, task)
		})
	}
}

func TestScanTasks_SkipsUndecodableRows(t *testing.T) {
	var buf bytes.Buffer
	logging.SetOutput(&buf)
	t.Cleanup(func() { logging.SetOutput(os.Stderr) })

	rows := &TestRows{rows: []*TestScanner{
		{data: []interface{}{int64(1), "first"}},
		{err: errors.New("bad row")},
		{data: []interface{}{int64(3), "third"}},
	}}

	tasks, err := ScanTasks(rows)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "first", tasks[0].Name)
	assert.Equal(t, "third", tasks[1].Name)

	assert.Contains(t, buf.String(), "error reading todo")
	assert.Contains(t, buf.String(), "bad row")
	assert.Contains(t, buf.String(), "row=2")
}

func TestScanTasks_EmptyResultIsNotNil(t *testing.T) {
	tasks, err := ScanTasks(&TestRows{})
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestScanTasks_IterationErrorAborts(t *testing.T) {
	rows := &TestRows{
		rows: []*TestScanner{{data: []interface{}{int64(1), "first"}}},
		err:  errors.New("disk I/O error"),
	}

	tasks, err := ScanTasks(rows)
	assert.Error(t, err)
	assert.Nil(t, tasks)
}
