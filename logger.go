package rowjoin

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/rowjoin/core"
	"github.com/hupe1980/rowjoin/tuid"
)

// Logger wraps slog.Logger with rowjoin-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithEntity adds an entity field to the logger.
func (l *Logger) WithEntity(entity core.EntityPath) *Logger {
	return &Logger{
		Logger: l.Logger.With("entity", string(entity)),
	}
}

// WithQueryID adds the id of a query to the logger.
func (l *Logger) WithQueryID(id tuid.Tuid) *Logger {
	return &Logger{
		Logger: l.Logger.With("query_id", id.String()),
	}
}

// LogQuery logs a single entity query.
func (l *Logger) LogQuery(ctx context.Context, primary core.ComponentName, rows, components int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "query failed",
			"primary", string(primary),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "query completed",
			"primary", string(primary),
			"rows", rows,
			"components", components,
		)
	}
}

// LogSkippedComponent logs a requested secondary component the source does not have.
func (l *Logger) LogSkippedComponent(ctx context.Context, name core.ComponentName) {
	l.DebugContext(ctx, "component skipped",
		"component", string(name),
	)
}

// LogQueryMany logs a fan-out over several entities.
func (l *Logger) LogQueryMany(ctx context.Context, count int, err error) {
	if err != nil {
		l.WarnContext(ctx, "multi-entity query failed",
			"count", count,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "multi-entity query completed",
			"count", count,
		)
	}
}
