package logging

import (
	"fmt"
	"log/slog"
	"strings"
)

// GooseLogger adapts slog to goose's Printf/Fatalf logger.
// Migration progress is logged at debug so normal runs stay quiet.
type GooseLogger struct {
	logger *slog.Logger
}

// NewGooseLogger wraps logger, or slog.Default() when logger is nil.
func NewGooseLogger(logger *slog.Logger) *GooseLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &GooseLogger{logger: logger}
}

func (g *GooseLogger) Printf(format string, v ...interface{}) {
	g.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "migrations")
}

// Fatalf logs at error level. It does not exit; goose returns the error to the caller.
func (g *GooseLogger) Fatalf(format string, v ...interface{}) {
	g.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "migrations")
}
