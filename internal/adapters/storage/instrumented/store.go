// Package instrumented decorates a ports.Store with OpenTelemetry tracing and
// metrics and a circuit breaker. The decorator never retries: a failed call is
// reported to the caller as-is, and an open breaker fails fast.
//
// Breaker accounting only counts storage failures. Absent results (nil, false,
// empty) and domain errors such as a name conflict are successes from the
// breaker's point of view.
package instrumented

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/arimodu/shopper/internal/domain"
	"github.com/arimodu/shopper/internal/domain/list"
	"github.com/arimodu/shopper/internal/domain/user"
	"github.com/arimodu/shopper/internal/platform/config"
	"github.com/arimodu/shopper/internal/platform/telemetry"
	"github.com/arimodu/shopper/internal/ports"
)

var _ ports.Store = (*Store)(nil)

// Metric result labels.
const (
	resultSuccess     = "success"
	resultAbsent      = "absent"
	resultRejected    = "rejected"
	resultError       = "error"
	resultCircuitOpen = "circuit_open"
)

// Store wraps another ports.Store.
type Store struct {
	next    ports.Store
	breaker *gobreaker.CircuitBreaker[any]
	tracer  trace.Tracer
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New wraps next. If metrics is nil, metric recording is skipped.
func New(next ports.Store, cfg config.CircuitBreakerConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        next.Name(),
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Store{
		next:    next,
		breaker: cb,
		tracer:  otel.GetTracerProvider().Tracer("github.com/arimodu/shopper/storage"),
		metrics: metrics,
		logger:  logger,
	}
}

// isSuccessful reports whether err should leave the breaker untouched.
// Domain errors and caller cancellation say nothing about backend health.
func isSuccessful(err error) bool {
	return err == nil ||
		domain.IsKnown(err) ||
		errors.Is(err, context.Canceled)
}

// call runs fn through the breaker inside a span and records metrics.
// absent reports whether a successful result means "not found".
func call[T any](ctx context.Context, s *Store, op string, fn func(context.Context) (T, error), absent func(T) bool) (T, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "storage."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			telemetry.AttrDBSystem.String(s.next.Name()),
			telemetry.AttrDBOperation.String(op),
		),
	)
	defer span.End()

	var out T
	_, err := s.breaker.Execute(func() (any, error) {
		v, err := fn(ctx)
		out = v
		return nil, err
	})

	result := resultSuccess
	switch {
	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		result = resultCircuitOpen
		err = fmt.Errorf("%s %s: %w", s.next.Name(), op, err)
	case err != nil && domain.IsKnown(err):
		result = resultRejected
	case err != nil:
		result = resultError
	case absent != nil && absent(out):
		result = resultAbsent
	}

	span.SetAttributes(attribute.String("result", result))
	if err != nil && result != resultRejected {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.recordMetrics(ctx, op, start, result)

	return out, err
}

func (s *Store) recordMetrics(ctx context.Context, op string, start time.Time, result string) {
	if s.metrics == nil {
		return
	}
	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String(s.next.Name()),
		telemetry.AttrDBOperation.String(op),
		telemetry.AttrResult.String(result),
	)
	s.metrics.StorageOpDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.metrics.StorageOpTotal.Add(ctx, 1, attrs)
}

func isNil[T any](v *T) bool { return v == nil }
func isFalse(v bool) bool { return !v }
func isEmpty[T any](v []T) bool { return len(v) == 0 }

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return s.next.Name() }

// HealthCheck pings the backend and reports an open breaker as unhealthy.
func (s *Store) HealthCheck(ctx context.Context) error {
	switch s.breaker.State() {
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", s.next.Name())
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", s.next.Name())
	}
	return s.next.HealthCheck(ctx)
}

// Close implements ports.Store.
func (s *Store) Close(ctx context.Context) error { return s.next.Close(ctx) }

func (s *Store) CreateUser(ctx context.Context, name, passwordHash string) (*user.User, error) {
	return call(ctx, s, "CreateUser", func(ctx context.Context) (*user.User, error) {
		return s.next.CreateUser(ctx, name, passwordHash)
	}, nil)
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*user.User, error) {
	return call(ctx, s, "GetUserByID", func(ctx context.Context) (*user.User, error) {
		return s.next.GetUserByID(ctx, id)
	}, isNil[user.User])
}

func (s *Store) GetUserByName(ctx context.Context, name string) (*user.User, error) {
	return call(ctx, s, "GetUserByName", func(ctx context.Context) (*user.User, error) {
		return s.next.GetUserByName(ctx, name)
	}, isNil[user.User])
}

func (s *Store) UpdateUser(ctx context.Context, id string, patch user.Patch) (*user.User, error) {
	return call(ctx, s, "UpdateUser", func(ctx context.Context) (*user.User, error) {
		return s.next.UpdateUser(ctx, id, patch)
	}, isNil[user.User])
}

func (s *Store) DeleteUser(ctx context.Context, id string) (bool, error) {
	return call(ctx, s, "DeleteUser", func(ctx context.Context) (bool, error) {
		return s.next.DeleteUser(ctx, id)
	}, isFalse)
}

func (s *Store) CreateList(ctx context.Context, name, ownerID string) (*list.List, error) {
	return call(ctx, s, "CreateList", func(ctx context.Context) (*list.List, error) {
		return s.next.CreateList(ctx, name, ownerID)
	}, nil)
}

func (s *Store) GetListByID(ctx context.Context, id string) (*list.List, error) {
	return call(ctx, s, "GetListByID", func(ctx context.Context) (*list.List, error) {
		return s.next.GetListByID(ctx, id)
	}, isNil[list.List])
}

func (s *Store) GetListByItemID(ctx context.Context, itemID string) (*list.List, error) {
	return call(ctx, s, "GetListByItemID", func(ctx context.Context) (*list.List, error) {
		return s.next.GetListByItemID(ctx, itemID)
	}, isNil[list.List])
}

func (s *Store) GetListsByUserID(ctx context.Context, ownerID string) ([]list.List, error) {
	return call(ctx, s, "GetListsByUserID", func(ctx context.Context) ([]list.List, error) {
		return s.next.GetListsByUserID(ctx, ownerID)
	}, isEmpty[list.List])
}

func (s *Store) GetInvitedLists(ctx context.Context, userID string) ([]list.List, error) {
	return call(ctx, s, "GetInvitedLists", func(ctx context.Context) ([]list.List, error) {
		return s.next.GetInvitedLists(ctx, userID)
	}, isEmpty[list.List])
}

func (s *Store) UpdateList(ctx context.Context, id string, patch list.Patch) (*list.List, error) {
	return call(ctx, s, "UpdateList", func(ctx context.Context) (*list.List, error) {
		return s.next.UpdateList(ctx, id, patch)
	}, isNil[list.List])
}

func (s *Store) DeleteList(ctx context.Context, id string) (bool, error) {
	return call(ctx, s, "DeleteList", func(ctx context.Context) (bool, error) {
		return s.next.DeleteList(ctx, id)
	}, isFalse)
}

func (s *Store) GetItemByID(ctx context.Context, itemID string) (*list.Item, error) {
	return call(ctx, s, "GetItemByID", func(ctx context.Context) (*list.Item, error) {
		return s.next.GetItemByID(ctx, itemID)
	}, isNil[list.Item])
}

func (s *Store) AddItem(ctx context.Context, listID string, order int, content string) (*list.List, error) {
	return call(ctx, s, "AddItem", func(ctx context.Context) (*list.List, error) {
		return s.next.AddItem(ctx, listID, order, content)
	}, isNil[list.List])
}

func (s *Store) UpdateItem(ctx context.Context, itemID string, patch list.ItemPatch) (*list.List, error) {
	return call(ctx, s, "UpdateItem", func(ctx context.Context) (*list.List, error) {
		return s.next.UpdateItem(ctx, itemID, patch)
	}, isNil[list.List])
}

func (s *Store) DeleteItem(ctx context.Context, itemID string) (bool, error) {
	return call(ctx, s, "DeleteItem", func(ctx context.Context) (bool, error) {
		return s.next.DeleteItem(ctx, itemID)
	}, isFalse)
}

func (s *Store) AddUserToList(ctx context.Context, listID, userID string) (*list.List, error) {
	return call(ctx, s, "AddUserToList", func(ctx context.Context) (*list.List, error) {
		return s.next.AddUserToList(ctx, listID, userID)
	}, isNil[list.List])
}

func (s *Store) RemoveUserFromList(ctx context.Context, listID, userID string) (*list.List, error) {
	return call(ctx, s, "RemoveUserFromList", func(ctx context.Context) (*list.List, error) {
		return s.next.RemoveUserFromList(ctx, listID, userID)
	}, isNil[list.List])
}

// toUint32 converts an int to uint32, clamping to [0, MaxUint32].
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
