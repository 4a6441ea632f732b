package api

import (
	"net/http"

	"quest-tracker/internal/errors"
	"quest-tracker/internal/validation"
)

// MapErrorToStatusCode maps application errors to HTTP status codes.
func MapErrorToStatusCode(err error) int {
	if appErr, ok := errors.AsAppError(err); ok {
		switch appErr.Type {
		case errors.ErrorTypeValidation, errors.ErrorTypeInvalidInput:
			return http.StatusBadRequest
		case errors.ErrorTypeNotFound:
			return http.StatusNotFound
		case errors.ErrorTypeTimeout:
			return http.StatusGatewayTimeout
		default:
			return http.StatusInternalServerError
		}
	}

	if validation.IsValidationError(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// GetSafeErrorMessage returns a client-facing message that never carries store details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}
	if ve, ok := validation.AsValidationError(err); ok && !errors.IsAppError(err) {
		return ve.GetUserFriendlyMessage()
	}
	if errors.IsAppError(err) {
		return errors.GetUserMessage(err)
	}
	return "An unexpected error occurred"
}

func errorCode(err error) string {
	if errors.IsAppError(err) {
		return errors.GetErrorCode(err)
	}
	if validation.IsValidationError(err) {
		return errors.CodeValidationFailed
	}
	return "INTERNAL_ERROR"
}
