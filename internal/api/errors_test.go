package api

import (
	"context"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"quest-tracker/internal/errors"
	"quest-tracker/internal/validation"
)

func TestMapErrorToStatusCode(t *testing.T) {
	ve := validation.NewValidationError()
	ve.AddBlankError("description", "")

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"Validation", errors.NewValidationError("invalid quest", ve), http.StatusBadRequest},
		{"Bare validation error", ve, http.StatusBadRequest},
		{"Invalid input", errors.NewInvalidInputError("id", "x", "must be an integer"), http.StatusBadRequest},
		{"Not found", errors.NewNotFoundError("quest", "1"), http.StatusNotFound},
		{"Timeout", errors.NewStoreError("find", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"Database", errors.NewDatabaseError("find", stderrors.New("boom")), http.StatusInternalServerError},
		{"Plain", stderrors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	ve := validation.NewValidationError()
	ve.AddBlankError("description", "")

	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(stderrors.New("secret dsn")))
	assert.Equal(t, "description must not be blank", GetSafeErrorMessage(ve))
	assert.Equal(t, "quest not found: 7", GetSafeErrorMessage(errors.NewNotFoundError("quest", "7")))
	assert.NotContains(t, GetSafeErrorMessage(errors.NewDatabaseError("find", stderrors.New("secret dsn"))), "secret")
}
