package validation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		errors   []FieldError
		expected string
	}{
		{"No errors", []FieldError{}, "validation error"},
		{"Single error", []FieldError{{Field: "description", Message: "is required"}}, "validation error for field 'description': is required"},
		{"Multiple errors", []FieldError{
			{Field: "description", Message: "is required"},
			{Field: "repeat_time", Message: "is required"},
		}, "multiple validation errors: validation error for field 'description': is required; validation error for field 'repeat_time': is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &ValidationError{Errors: tt.errors}
			assert.Equal(t, tt.expected, ve.Error())
		})
	}
}

func TestValidationError_AddHelpers(t *testing.T) {
	ve := NewValidationError()
	assert.False(t, ve.HasErrors())

	ve.AddRequiredError("description")
	ve.AddBlankError("description", "  ")
	ve.AddInvalidFormatError("repeatTime", "7pm", "HH:MM")
	ve.AddInvalidLengthError("imageUrl", "x", 10)
	ve.AddInvalidValueError("sort", "sideways", "unknown")

	require.Len(t, ve.Errors, 5)
	assert.True(t, ve.HasErrors())

	assert.Equal(t, ErrorTypeRequired, ve.Errors[0].Type)
	assert.Equal(t, "description is required", ve.Errors[0].Message)
	assert.Nil(t, ve.Errors[0].Value)

	assert.Equal(t, ErrorTypeBlank, ve.Errors[1].Type)
	assert.Equal(t, "description must not be blank", ve.Errors[1].Message)
	assert.Equal(t, "  ", ve.Errors[1].Value)

	assert.Equal(t, ErrorTypeInvalidFormat, ve.Errors[2].Type)
	assert.Contains(t, ve.Errors[2].Message, "expected: HH:MM")

	assert.Equal(t, ErrorTypeInvalidLength, ve.Errors[3].Type)
	assert.Equal(t, "imageUrl must be at most 10 characters long", ve.Errors[3].Message)

	assert.Equal(t, ErrorTypeInvalidValue, ve.Errors[4].Type)
	assert.Equal(t, "sort has invalid value: unknown", ve.Errors[4].Message)
}

func TestValidationError_GetFieldErrors(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("description")
	ve.AddBlankError("description", "")
	ve.AddRequiredError("repeat_time")

	assert.Len(t, ve.GetFieldErrors("description"), 2)
	assert.Len(t, ve.GetFieldErrors("repeat_time"), 1)
	assert.Empty(t, ve.GetFieldErrors("missing"))
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	assert.Equal(t, "Input validation failed", NewValidationError().GetUserFriendlyMessage())

	single := NewValidationError()
	single.AddRequiredError("repeat_time")
	assert.Equal(t, "repeat_time is required", single.GetUserFriendlyMessage())

	multi := NewValidationError()
	multi.AddRequiredError("description")
	multi.AddRequiredError("repeat_time")
	assert.Equal(t,
		"Multiple validation errors occurred:\n- description is required\n- repeat_time is required",
		multi.GetUserFriendlyMessage())
}

func TestIsValidationError(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("description")

	assert.True(t, IsValidationError(ve))
	assert.True(t, IsValidationError(fmt.Errorf("update: %w", ve)))
	assert.False(t, IsValidationError(&FieldError{Field: "test", Message: "error"}))
	assert.False(t, IsValidationError(nil))

	extracted, ok := AsValidationError(fmt.Errorf("wrapped: %w", ve))
	require.True(t, ok)
	assert.Same(t, ve, extracted)
}
