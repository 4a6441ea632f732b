package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"quest-tracker/internal/errors"
)

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	TraceID string `json:"trace_id,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error body. The trace id is the chi request id.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	RespondWithJSON(w, status, ErrorResponse{
		Error:   message,
		Code:    code,
		TraceID: middleware.GetReqID(r.Context()),
	})
}

// RespondWithErrorAndLog maps err to a status and safe message and logs it.
// 5xx responses log at error level, 4xx at debug. AppError fields are logged
// under "details" and never reach the response body.
func RespondWithErrorAndLog(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status := MapErrorToStatusCode(err)

	attrs := []any{
		"status_code", status,
		"error", err.Error(),
		"method", r.Method,
		"path", r.URL.Path,
		"trace_id", middleware.GetReqID(r.Context()),
	}
	if appErr, ok := errors.AsAppError(err); ok {
		attrs = append(attrs, "details", appErr)
	}
	if status >= http.StatusInternalServerError || errors.ShouldLogError(err) {
		logger.ErrorContext(r.Context(), "request failed", attrs...)
	} else {
		logger.DebugContext(r.Context(), "request rejected", attrs...)
	}

	RespondWithError(w, r, status, errorCode(err), GetSafeErrorMessage(err))
}
