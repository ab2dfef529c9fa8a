package domain

// Task represents a todo entry in the domain model.
// ID is assigned by the store and never reused; Name is the description.
type Task struct {
	ID   int64
	Name string
}

// NewTask creates a new, not yet stored Task with the given name.
func NewTask(name string) Task {
	return Task{
		Name: name,
	}
}

// IsStored reports whether the store has assigned the task an ID.
func (t Task) IsStored() bool {
	return t.ID > 0
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.Name
}
