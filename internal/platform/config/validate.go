package config

import (
	"errors"
	"fmt"
)

const (
	minBcryptCost = 4
	maxBcryptCost = 31
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Storage.validate(),
		c.Session.validate(),
		c.Auth.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout <= 0 {
		errs = append(errs, errors.New("server.request_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (st *StorageConfig) validate() error {
	var errs []error

	switch st.Driver {
	case DriverMemory:
	case DriverMongo:
		if st.Mongo.URI == "" {
			errs = append(errs, errors.New("storage.mongo.uri must not be empty when driver is mongo"))
		}
		if st.Mongo.Database == "" {
			errs = append(errs, errors.New("storage.mongo.database must not be empty when driver is mongo"))
		}
	case DriverPostgres:
		if st.Postgres.URL == "" {
			errs = append(errs, errors.New("storage.postgres.url must not be empty when driver is postgres"))
		}
		if st.Postgres.MaxConns < 1 {
			errs = append(errs, fmt.Errorf("storage.postgres.max_conns must be >= 1, got %d", st.Postgres.MaxConns))
		}
	default:
		errs = append(errs, fmt.Errorf("storage.driver must be one of: memory, mongo, postgres; got %q", st.Driver))
	}

	if st.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("storage.circuit_breaker.max_failures must be >= 1, got %d",
			st.CircuitBreaker.MaxFailures))
	}
	if st.CircuitBreaker.Timeout <= 0 {
		errs = append(errs, errors.New("storage.circuit_breaker.timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (s *SessionConfig) validate() error {
	var errs []error

	switch s.Driver {
	case DriverMemory:
	case DriverRedis:
		if s.RedisURL == "" {
			errs = append(errs, errors.New("session.redis_url must not be empty when driver is redis"))
		}
	default:
		errs = append(errs, fmt.Errorf("session.driver must be one of: memory, redis; got %q", s.Driver))
	}

	if s.TTL <= 0 {
		errs = append(errs, errors.New("session.ttl must be positive"))
	}
	if s.CookieName == "" {
		errs = append(errs, errors.New("session.cookie_name must not be empty"))
	}

	return errors.Join(errs...)
}

func (a *AuthConfig) validate() error {
	if a.BcryptCost < minBcryptCost || a.BcryptCost > maxBcryptCost {
		return fmt.Errorf("auth.bcrypt_cost must be between %d and %d, got %d",
			minBcryptCost, maxBcryptCost, a.BcryptCost)
	}
	return nil
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	if t.SampleRatio < 0 || t.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("telemetry.sample_ratio must be between 0 and 1, got %g", t.SampleRatio))
	}

	return errors.Join(errs...)
}
