package storage

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arimodu/shopper/internal/platform/config"
)

func TestOpen_Memory(t *testing.T) {
	t.Parallel()

	s, err := Open(context.Background(), config.StorageConfig{
		Driver: config.DriverMemory,
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures: 5,
			Timeout:     time.Second,
		},
	}, nil, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	require.Equal(t, "memory", s.Name())
	require.NoError(t, s.HealthCheck(context.Background()))

	u, err := s.CreateUser(context.Background(), "alice", "hash")
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
}

func TestOpen_UnknownDriver(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), config.StorageConfig{Driver: "sqlite"}, nil, slog.New(slog.DiscardHandler))
	require.ErrorContains(t, err, "unknown storage driver")
}

func TestOpen_PostgresBadURL(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), config.StorageConfig{
		Driver:   config.DriverPostgres,
		Postgres: config.PostgresConfig{URL: "://not a url"},
	}, nil, slog.New(slog.DiscardHandler))
	require.Error(t, err)
}
