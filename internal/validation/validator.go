package validation

import (
	"unicode/utf8"

	"todo/internal/config"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string has at least one character.
// Blanks count as characters.
func (v *Validator) IsNonEmptyString(s string) bool {
	return s != ""
}

// IsValidStringLength checks if s has between min and max characters.
// A max of 0 means no upper limit.
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(s)
	if length < min {
		return false
	}
	return max <= 0 || length <= max
}

// TaskNameLimits returns the configured task name length bounds
func (v *Validator) TaskNameLimits() (min, max int) {
	if v.config != nil {
		return v.config.Validation.TaskNameMinLength, v.config.Validation.TaskNameMaxLength
	}
	return 1, 0
}
