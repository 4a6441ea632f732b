package errors

import (
	"log/slog"
	"maps"
	"slices"
)

// ErrorType classifies an AppError. The value is also its log label.
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeDatabase     ErrorType = "database"
	ErrorTypeInvalidInput ErrorType = "invalid_input"
	ErrorTypeTimeout      ErrorType = "timeout"
)

func (et ErrorType) String() string {
	if et == "" {
		return "unknown"
	}
	return string(et)
}

// AppError is the error every layer returns upward. Fields carries structured
// details (operation, resource, quest id) that end up in logs, never in responses.
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	Fields  map[string]any
}

func (e *AppError) Error() string {
	msg := e.Type.String() + ": " + e.Message
	if e.Cause != nil {
		msg += " (caused by: " + e.Cause.Error() + ")"
	}
	return msg
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches another AppError with the same type and code.
func (e *AppError) Is(target error) bool {
	other, ok := target.(*AppError)
	return ok && e.Type == other.Type && e.Code == other.Code
}

// IsType checks if this error is of the specified type
func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// With sets a field and returns e for chaining.
func (e *AppError) With(key string, value any) *AppError {
	if e.Fields == nil {
		e.Fields = make(map[string]any)
	}
	e.Fields[key] = value
	return e
}

// Field returns a previously set field.
func (e *AppError) Field(key string) (any, bool) {
	value, ok := e.Fields[key]
	return value, ok
}

// LogValue groups type, code, message, cause and fields (sorted by key) for slog.
func (e *AppError) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 4+len(e.Fields))
	attrs = append(attrs,
		slog.String("type", e.Type.String()),
		slog.String("code", e.Code),
		slog.String("message", e.Message),
	)
	if e.Cause != nil {
		attrs = append(attrs, slog.String("cause", e.Cause.Error()))
	}
	for _, key := range slices.Sorted(maps.Keys(e.Fields)) {
		attrs = append(attrs, slog.Any(key, e.Fields[key]))
	}
	return slog.GroupValue(attrs...)
}
