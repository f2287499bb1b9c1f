package config

const (
	defaultServerPort = 8080

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultPostgresMaxConns = 10
	defaultBcryptCost       = 12
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "30s",

		"log.level":  "info",
		"log.format": "json",

		"storage.driver":                          DriverMemory,
		"storage.mongo.uri":                       "",
		"storage.mongo.database":                  "shopper",
		"storage.mongo.transactions":              false,
		"storage.mongo.connect_timeout":           "10s",
		"storage.postgres.url":                    "",
		"storage.postgres.max_conns":              defaultPostgresMaxConns,
		"storage.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"storage.circuit_breaker.timeout":         "30s",
		"storage.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"session.driver":        DriverMemory,
		"session.redis_url":     "",
		"session.ttl":           "168h",
		"session.cookie_name":   "shopper_session",
		"session.cookie_secure": true,

		"auth.bcrypt_cost": defaultBcryptCost,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "shopper",
		"telemetry.sample_ratio": 1.0,
	}
}
