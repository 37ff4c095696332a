// Package logging builds the validator's slog loggers and carries a
// request-scoped logger through context.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("run_id", id)))
//	logging.FromContext(ctx).InfoContext(ctx, "workbook validated")
//
// Errors are logged with the operation, the workbook or schema version in
// play, and the full chain under "error":
//
//	logger.ErrorContext(ctx, "failed to resolve schema",
//	    slog.String("operation", "Schema"),
//	    slog.String("schema_version", version),
//	    slog.Any("error", err),
//	)
//
// Every record passes through a masq redactor so registry credentials and
// bearer tokens do not reach the output.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
)

// Output formats accepted by New.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Levels lists the accepted level names, most verbose first.
var Levels = []string{"debug", "info", "warn", "error"}

type contextKey struct{}

// New returns a logger writing to w. Unknown levels fall back to info and
// any format other than FormatText produces JSON. Debug loggers include the
// source location.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: redactor(),
	}
	if format == FormatText {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel maps one of Levels, in any case, to its slog level.
func ParseLevel(name string) (slog.Level, error) {
	var lvl slog.Level
	if !slices.Contains(Levels, strings.ToLower(name)) {
		return lvl, fmt.Errorf("unknown log level %q, want one of %s", name, strings.Join(Levels, ", "))
	}
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return lvl, fmt.Errorf("parsing log level %q: %w", name, err)
	}
	return lvl, nil
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
