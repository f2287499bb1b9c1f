// Package main runs the shopper API. It loads the APP_PROFILE configuration,
// wires storage, sessions, services and handlers with samber/do, serves HTTP
// and shuts down gracefully on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/arimodu/shopper/internal/adapters/http"
	"github.com/arimodu/shopper/internal/adapters/http/handlers"
	"github.com/arimodu/shopper/internal/adapters/http/middleware"
	sessionmem "github.com/arimodu/shopper/internal/adapters/session/memory"
	sessionredis "github.com/arimodu/shopper/internal/adapters/session/redis"
	"github.com/arimodu/shopper/internal/adapters/storage"

	"github.com/arimodu/shopper/internal/app"
	"github.com/arimodu/shopper/internal/platform/config"
	"github.com/arimodu/shopper/internal/platform/health"
	"github.com/arimodu/shopper/internal/platform/logging"
	"github.com/arimodu/shopper/internal/platform/password"
	"github.com/arimodu/shopper/internal/platform/telemetry"
	"github.com/arimodu/shopper/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log, os.Stderr)

	ctx := context.Background()
	tel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, tel.Metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolving the server opens the store and session backends.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		_ = tel.Shutdown(ctx)
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	store := do.MustInvoke[ports.Store](injector)
	sessions := do.MustInvoke[ports.SessionStore](injector)
	registry.Register(store)
	registry.Register(sessions)

	closeBackends := func() {
		_ = sessions.Close()
		_ = store.Close(context.Background())
		_ = tel.Shutdown(context.Background())
	}

	// Bind before serving so a taken port fails startup here.
	if err := server.Listen(); err != nil {
		closeBackends()
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		closeBackends()
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	if err := sessions.Close(); err != nil {
		logger.Error("session store close error", slog.Any("error", err))
	}
	if err := store.Close(shutdownCtx); err != nil {
		logger.Error("storage close error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := tel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete", slog.String("profile", profile))
	return nil
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (ports.Store, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return storage.Open(ctx, cfg.Storage, metrics, logger)
	})

	do.Provide(injector, func(_ do.Injector) (ports.SessionStore, error) {
		if cfg.Session.Driver == config.DriverRedis {
			return sessionredis.Open(ctx, cfg.Session.RedisURL)
		}
		return sessionmem.New(), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.PasswordHasher, error) {
		return password.New(cfg.Auth.BcryptCost), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AuthService, error) {
		return app.NewAuthService(
			do.MustInvoke[ports.Store](i),
			do.MustInvoke[ports.SessionStore](i),
			do.MustInvoke[ports.PasswordHasher](i),
			cfg.Session.TTL,
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AccountService, error) {
		store := do.MustInvoke[ports.Store](i)
		hasher := do.MustInvoke[ports.PasswordHasher](i)
		return app.NewAccountService(store, hasher, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ListService, error) {
		store := do.MustInvoke[ports.Store](i)
		return app.NewListService(store, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	cookie := handlers.SessionCookie{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.CookieSecure,
		TTL:    cfg.Session.TTL,
	}

	do.Provide(injector, func(i do.Injector) (adapthttp.Routes, error) {
		auth := do.MustInvoke[ports.AuthService](i)
		lists := do.MustInvoke[ports.ListService](i)
		return adapthttp.Routes{
			Auth:           handlers.NewAuthHandler(auth, cookie),
			User:           handlers.NewUserHandler(do.MustInvoke[ports.AccountService](i), auth, cookie),
			List:           handlers.NewListHandler(lists),
			Item:           handlers.NewItemHandler(lists),
			Health:         handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			RequireSession: middleware.RequireSession(auth, cookie.Name),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		routes := do.MustInvoke[adapthttp.Routes](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(routes,
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.Logging(logger),
			middleware.Recovery(logger),
			middleware.OpenTelemetry(metrics),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
