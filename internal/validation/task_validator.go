package validation

import (
	"todo/internal/config"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator using configured limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateTaskName validates a task name for creation. Names are checked
// exactly as typed. A minimum length of zero accepts empty names and a
// maximum of zero leaves the length unbounded.
func (tv *TaskValidator) ValidateTaskName(name string) error {
	validationError := NewValidationError()
	min, max := tv.validator.TaskNameLimits()

	if min > 0 && !tv.validator.IsNonEmptyString(name) {
		validationError.AddRequiredError("task_name")
		return validationError
	}

	if !tv.validator.IsValidStringLength(name, min, max) {
		validationError.AddInvalidLengthError("task_name", name, min, max)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
