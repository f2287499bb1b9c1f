// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
//
// Services are the error boundary: domain errors pass through unchanged, any
// other storage failure is logged with its full chain and replaced by
// domain.ErrInternal so engine details never reach a client.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/arimodu/shopper/internal/domain"
)

// storageFailure logs err and converts it to domain.ErrInternal unless it
// already carries a domain sentinel.
func storageFailure(ctx context.Context, logger *slog.Logger, op string, err error, attrs ...slog.Attr) error {
	if domain.IsKnown(err) {
		return err
	}

	args := make([]any, 0, len(attrs)+2)
	args = append(args, slog.String("operation", op))
	for _, a := range attrs {
		args = append(args, a)
	}
	args = append(args, slog.Any("error", err))
	logger.ErrorContext(ctx, "storage operation failed", args...)

	return fmt.Errorf("%s: %w", op, domain.ErrInternal)
}

// notFound builds a wrapped domain.ErrNotFound for an absent entity.
func notFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, domain.ErrNotFound)
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
