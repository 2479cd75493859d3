package validation

import (
	"strings"

	"task-tracker/internal/config"
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

// IsNonEmptyString checks if a string is not empty.
// Whitespace-only strings count as empty when blank titles are rejected.
func (v *Validator) IsNonEmptyString(s string) bool {
	if v.rejectBlank() {
		return strings.TrimSpace(s) != ""
	}
	return s != ""
}

// IsValidTaskID checks if a task ID is valid (positive)
func (v *Validator) IsValidTaskID(id int) bool {
	return id > 0
}

// rejectBlank returns the configured blank-title policy or the default
func (v *Validator) rejectBlank() bool {
	if v.config != nil {
		return v.config.Validation.RejectBlankTitles
	}
	return false
}
