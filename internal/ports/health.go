package ports

import "context"

// HealthChecker is a backend the readiness probe depends on: the storage
// driver and the session store.
type HealthChecker interface {
	// Name labels the backend in readiness output, e.g. "postgres" or
	// "redis-sessions".
	Name() string
	// HealthCheck returns nil when the backend answers before ctx ends.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers at boot and probes them on demand.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll maps each checker name to its result; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
