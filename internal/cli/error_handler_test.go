package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "quest-tracker/internal/errors"
	"quest-tracker/internal/validation"
)

func TestErrorHandler_Handle(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name      string
		operation string
		err       error
		expected  string
	}{
		{
			name:      "Validation error",
			operation: "create quest",
			err:       apperrors.NewValidationError("invalid input", nil),
			expected:  "failed to create quest: invalid input",
		},
		{
			name:      "Not found error",
			operation: "get quest",
			err:       apperrors.NewNotFoundError("quest", "123"),
			expected:  "failed to get quest: quest not found: 123",
		},
		{
			name:      "Database error",
			operation: "save quest",
			err:       apperrors.NewDatabaseError("insert", errors.New("disk full")),
			expected:  "failed to save quest: A database error occurred. Please try again.",
		},
		{
			name:      "Bare validation error",
			operation: "update quest",
			err: &validation.ValidationError{
				Errors: []validation.FieldError{{Field: "description", Message: "description is required"}},
			},
			expected: "failed to update quest: description is required",
		},
		{
			name:      "Regular error",
			operation: "process",
			err:       errors.New("regular error"),
			expected:  "failed to process: regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.Handle(tt.operation, tt.err)
			require.Error(t, result)
			assert.Equal(t, tt.expected, result.Error())
		})
	}
}

func TestErrorHandler_HandleNil(t *testing.T) {
	eh := NewErrorHandler()
	assert.NoError(t, eh.Handle("list quests", nil))
	assert.NoError(t, eh.HandleSimple(nil))
}

func TestErrorHandler_HandleKeepsUnknownCause(t *testing.T) {
	cause := errors.New("boom")
	err := NewErrorHandler().Handle("serve", cause)
	assert.ErrorIs(t, err, cause)
}

func TestErrorHandler_HandleSimple(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Validation error",
			err:      apperrors.NewValidationError("invalid input", nil),
			expected: "invalid input",
		},
		{
			name:     "Not found error",
			err:      apperrors.NewNotFoundError("quest", "123"),
			expected: "quest not found: 123",
		},
		{
			name:     "Database error",
			err:      apperrors.NewDatabaseError("insert", errors.New("disk full")),
			expected: "A database error occurred. Please try again.",
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: "regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.HandleSimple(tt.err)
			require.Error(t, result)
			assert.Equal(t, tt.expected, result.Error())
		})
	}
}

func TestErrorHandler_Classification(t *testing.T) {
	eh := NewErrorHandler()

	bareValidation := &validation.ValidationError{
		Errors: []validation.FieldError{{Field: "test", Message: "invalid"}},
	}

	tests := []struct {
		name       string
		err        error
		validation bool
		notFound   bool
		database   bool
	}{
		{name: "AppError validation", err: apperrors.NewValidationError("invalid input", nil), validation: true},
		{name: "Bare validation error", err: bareValidation, validation: true},
		{name: "Not found error", err: apperrors.NewNotFoundError("quest", "1"), notFound: true},
		{name: "Database error", err: apperrors.NewDatabaseError("insert", nil), database: true},
		{name: "Regular error", err: errors.New("regular error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.validation, eh.IsValidationError(tt.err))
			assert.Equal(t, tt.notFound, eh.IsNotFoundError(tt.err))
			assert.Equal(t, tt.database, eh.IsDatabaseError(tt.err))
		})
	}
}

func TestErrorHandler_GetErrorCode(t *testing.T) {
	eh := NewErrorHandler()
	assert.Equal(t, "NOT_FOUND", eh.GetErrorCode(apperrors.NewNotFoundError("quest", "1")))
	assert.Equal(t, "UNKNOWN_ERROR", eh.GetErrorCode(errors.New("plain")))
}
