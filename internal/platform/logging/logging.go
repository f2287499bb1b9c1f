// Package logging builds the service's slog logger and carries the
// request-scoped logger through context.
//
// The HTTP middleware stores a child logger carrying request_id and
// correlation_id (and, behind the session guard, user_id) with WithLogger;
// handlers and services retrieve it with FromContext. Application services
// log failures with the operation and entity IDs:
//
//	logger.ErrorContext(ctx, "storage operation failed",
//	    slog.String("operation", "GetListByID"),
//	    slog.String("list_id", id),
//	    slog.Any("error", err),
//	)
//
// Every handler built by New runs attributes through the masq redactor in
// redact_handler.go, so passwords, password hashes and session tokens never
// reach the output even when logged by mistake.
package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/arimodu/shopper/internal/platform/config"
)

type contextKey struct{}

// New builds a logger from cfg. Level accepts any slog level name
// ("debug", "INFO", "warn+2"); unparsable values fall back to info. Format
// "text" selects slog's text handler and everything else JSON. Debug
// loggers include the source location.
func New(cfg config.LogConfig, w io.Writer) *slog.Logger {
	lvl := parseLevel(cfg.Level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
