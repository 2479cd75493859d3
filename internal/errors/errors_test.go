package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewValidationError(t *testing.T) {
	cause := errors.New("title is required")
	err := NewValidationError("invalid feature", cause)

	if err.Type != ErrorTypeValidation {
		t.Errorf("NewValidationError type = %v, want %v", err.Type, ErrorTypeValidation)
	}
	if err.Message != "invalid feature" {
		t.Errorf("NewValidationError message = %v, want %v", err.Message, "invalid feature")
	}
	if err.Code != "VALIDATION_FAILED" {
		t.Errorf("NewValidationError code = %v, want %v", err.Code, "VALIDATION_FAILED")
	}
	if err.Cause != cause {
		t.Errorf("NewValidationError cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("task", "42")

	if err.Type != ErrorTypeNotFound {
		t.Errorf("NewNotFoundError type = %v, want %v", err.Type, ErrorTypeNotFound)
	}
	if err.Message != "task not found: 42" {
		t.Errorf("NewNotFoundError message = %v, want %v", err.Message, "task not found: 42")
	}
	if err.Code != "NOT_FOUND" {
		t.Errorf("NewNotFoundError code = %v, want %v", err.Code, "NOT_FOUND")
	}

	resource, ok := err.GetContext("resource")
	if !ok || resource != "task" {
		t.Errorf("NewNotFoundError should set resource context")
	}

	identifier, ok := err.GetContext("identifier")
	if !ok || identifier != "42" {
		t.Errorf("NewNotFoundError should set identifier context")
	}
}

func TestNewInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("priority", "urgent", "unknown priority")

	if err.Type != ErrorTypeInvalidInput {
		t.Errorf("NewInvalidInputError type = %v, want %v", err.Type, ErrorTypeInvalidInput)
	}
	if err.Message != "invalid input for priority: unknown priority" {
		t.Errorf("NewInvalidInputError message = %v, want %v", err.Message, "invalid input for priority: unknown priority")
	}
	if err.Code != "INVALID_INPUT" {
		t.Errorf("NewInvalidInputError code = %v, want %v", err.Code, "INVALID_INPUT")
	}

	field, ok := err.GetContext("field")
	if !ok || field != "priority" {
		t.Errorf("NewInvalidInputError should set field context")
	}

	value, ok := err.GetContext("value")
	if !ok || value != "urgent" {
		t.Errorf("NewInvalidInputError should set value context")
	}
}

func TestNewReleasedError(t *testing.T) {
	err := NewReleasedError("task handle", "2")

	if err.Type != ErrorTypeReleased {
		t.Errorf("NewReleasedError type = %v, want %v", err.Type, ErrorTypeReleased)
	}
	if err.Message != "task handle used after release: 2" {
		t.Errorf("NewReleasedError message = %v, want %v", err.Message, "task handle used after release: 2")
	}
	if err.Code != "RELEASED" {
		t.Errorf("NewReleasedError code = %v, want %v", err.Code, "RELEASED")
	}
}

func TestWrapError(t *testing.T) {
	cause := errors.New("original error")
	err := WrapError(cause, ErrorTypeInvalidInput, "wrapped message")

	if err.Type != ErrorTypeInvalidInput {
		t.Errorf("WrapError type = %v, want %v", err.Type, ErrorTypeInvalidInput)
	}
	if err.Code != "invalid_input" {
		t.Errorf("WrapError code = %v, want %v", err.Code, "invalid_input")
	}
	if err.Cause != cause {
		t.Errorf("WrapError cause = %v, want %v", err.Cause, cause)
	}
}

func TestIsAppError(t *testing.T) {
	appError := &AppError{Type: ErrorTypeValidation}
	wrapped := fmt.Errorf("add feature: %w", appError)
	regularError := errors.New("regular error")

	if !IsAppError(appError) {
		t.Errorf("IsAppError should return true for AppError")
	}
	if !IsAppError(wrapped) {
		t.Errorf("IsAppError should return true for wrapped AppError")
	}
	if IsAppError(regularError) {
		t.Errorf("IsAppError should return false for regular error")
	}
	if IsAppError(nil) {
		t.Errorf("IsAppError should return false for nil")
	}
}

func TestAsAppError(t *testing.T) {
	appError := &AppError{Type: ErrorTypeValidation}
	regularError := errors.New("regular error")

	result, ok := AsAppError(appError)
	if !ok {
		t.Errorf("AsAppError should return true for AppError")
	}
	if result != appError {
		t.Errorf("AsAppError should return the same AppError instance")
	}

	result, ok = AsAppError(regularError)
	if ok {
		t.Errorf("AsAppError should return false for regular error")
	}
	if result != nil {
		t.Errorf("AsAppError should return nil for regular error")
	}
}

func TestIsErrorType(t *testing.T) {
	appError := &AppError{Type: ErrorTypeValidation}
	regularError := errors.New("regular error")

	if !IsErrorType(appError, ErrorTypeValidation) {
		t.Errorf("IsErrorType should return true for matching type")
	}
	if IsErrorType(appError, ErrorTypeNotFound) {
		t.Errorf("IsErrorType should return false for different type")
	}
	if IsErrorType(regularError, ErrorTypeValidation) {
		t.Errorf("IsErrorType should return false for regular error")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Validation error",
			err:      NewValidationError("invalid feature", nil),
			expected: "invalid feature",
		},
		{
			name:     "Validation error with cause",
			err:      NewValidationError("invalid feature", errors.New("title is required")),
			expected: "invalid feature: title is required",
		},
		{
			name:     "Not found error",
			err:      NewNotFoundError("task", "7"),
			expected: "task not found: 7",
		},
		{
			name:     "Released error",
			err:      NewReleasedError("task handle", "1"),
			expected: "The task manager has already been released.",
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: "regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetUserMessage(tt.err)
			if result != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	appError := &AppError{Code: "VALIDATION_FAILED"}
	regularError := errors.New("regular error")

	if GetErrorCode(appError) != "VALIDATION_FAILED" {
		t.Errorf("GetErrorCode should return correct code for AppError")
	}
	if GetErrorCode(regularError) != "UNKNOWN_ERROR" {
		t.Errorf("GetErrorCode should return UNKNOWN_ERROR for regular error")
	}
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Validation error", NewValidationError("invalid input", nil), false},
		{"Not found error", NewNotFoundError("task", "123"), false},
		{"Invalid input error", NewInvalidInputError("format", "xml", "unsupported"), false},
		{"Released error", NewReleasedError("task handle", "1"), true},
		{"Regular error", errors.New("regular error"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ShouldLogError(tt.err)
			if result != tt.expected {
				t.Errorf("ShouldLogError() = %v, want %v", result, tt.expected)
			}
		})
	}
}
