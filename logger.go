package csvdiff

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with csvdiff-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithSource adds the source pair to the logger.
func (l *Logger) WithSource(source Source) *Logger {
	return &Logger{
		Logger: l.Logger.With("expected", source.Expected, "actual", source.Actual),
	}
}

// LogEncoding logs the resolved character encoding for one source file.
func (l *Logger) LogEncoding(ctx context.Context, name, encoding string, detected bool) {
	l.DebugContext(ctx, "encoding resolved",
		"source", name,
		"encoding", encoding,
		"detected", detected,
	)
}

// LogRow logs one row classification.
func (l *Logger) LogRow(ctx context.Context, class Classification, key string) {
	l.DebugContext(ctx, "row classified",
		"class", class.String(),
		"key", key,
	)
}

// LogComparison logs a completed comparison run.
func (l *Logger) LogComparison(ctx context.Context, source Source, summary Summary, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "comparison failed",
			"expected", source.Expected,
			"actual", source.Actual,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "comparison completed",
			"expected", source.Expected,
			"actual", source.Actual,
			"kept", summary.Kept,
			"deleted", summary.Deleted,
			"inserted", summary.Inserted,
			"modified", summary.Modified,
			"duration", duration,
		)
	}
}

// LogReport logs a written comparison report.
func (l *Logger) LogReport(ctx context.Context, location string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "report write failed",
			"location", location,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "report written",
			"location", location,
		)
	}
}
