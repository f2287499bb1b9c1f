// Package storage selects and opens the configured ports.Store backend and
// wraps it with the instrumented decorator.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/arimodu/shopper/internal/adapters/storage/instrumented"
	"github.com/arimodu/shopper/internal/adapters/storage/memory"
	"github.com/arimodu/shopper/internal/adapters/storage/mongo"
	"github.com/arimodu/shopper/internal/adapters/storage/postgres"
	"github.com/arimodu/shopper/internal/platform/config"
	"github.com/arimodu/shopper/internal/platform/telemetry"
	"github.com/arimodu/shopper/internal/ports"
)

// Open connects the backend named by cfg.Driver. The backend is chosen once
// at startup; there is no runtime switching. If metrics is nil, metric
// recording is skipped.
func Open(ctx context.Context, cfg config.StorageConfig, metrics *telemetry.Metrics, logger *slog.Logger) (ports.Store, error) {
	var (
		backend ports.Store
		err     error
	)

	switch cfg.Driver {
	case config.DriverMemory:
		backend = memory.New()
	case config.DriverMongo:
		backend, err = mongo.Open(ctx, mongo.Config{
			URI:            cfg.Mongo.URI,
			Database:       cfg.Mongo.Database,
			ConnectTimeout: cfg.Mongo.ConnectTimeout,
			Transactions:   cfg.Mongo.Transactions,
		})
	case config.DriverPostgres:
		backend, err = postgres.Open(ctx, postgres.Config{
			URL:      cfg.Postgres.URL,
			MaxConns: cfg.Postgres.MaxConns,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s storage: %w", cfg.Driver, err)
	}

	logger.Info("storage backend ready", slog.String("driver", backend.Name()))

	return instrumented.New(backend, cfg.CircuitBreaker, metrics, logger), nil
}
