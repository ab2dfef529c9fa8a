package sqlite

// Task is a row of the todo table
type Task struct {
	ID   int64
	Name string
}
