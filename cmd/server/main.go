// Package main is the entry point for the organizer service. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
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

	adapthttp "github.com/MariuszKam/Organizer/internal/adapters/http"
	"github.com/MariuszKam/Organizer/internal/adapters/http/handlers"
	"github.com/MariuszKam/Organizer/internal/adapters/http/middleware"

	"github.com/MariuszKam/Organizer/internal/adapters/storage/memory"
	"github.com/MariuszKam/Organizer/internal/app"
	"github.com/MariuszKam/Organizer/internal/platform/config"
	"github.com/MariuszKam/Organizer/internal/platform/health"
	"github.com/MariuszKam/Organizer/internal/platform/logging"
	"github.com/MariuszKam/Organizer/internal/platform/telemetry"
	"github.com/MariuszKam/Organizer/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
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
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register the stores as readiness checks after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*memory.UserStore](injector))
	registry.Register(do.MustInvoke[*memory.TaskStore](injector))
	registry.Register(do.MustInvoke[*memory.ProjectStore](injector))

	// Start server in background.
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
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		logger.Info("server stopped")
		serverErr <- nil
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Stores and id generators.
	do.Provide(injector, func(_ do.Injector) (*memory.UserStore, error) {
		return memory.NewUserStore(), nil
	})
	do.Provide(injector, func(_ do.Injector) (*memory.TaskStore, error) {
		return memory.NewTaskStore(), nil
	})
	do.Provide(injector, func(_ do.Injector) (*memory.ProjectStore, error) {
		return memory.NewProjectStore(), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.UserStore, error) {
		return do.MustInvoke[*memory.UserStore](i), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.TaskStore, error) {
		return do.MustInvoke[*memory.TaskStore](i), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.ProjectStore, error) {
		return do.MustInvoke[*memory.ProjectStore](i), nil
	})
	do.Provide(injector, func(_ do.Injector) (ports.UserIDGenerator, error) {
		return memory.UserIDGenerator{}, nil
	})
	do.Provide(injector, func(_ do.Injector) (ports.TaskIDGenerator, error) {
		return memory.TaskIDGenerator{}, nil
	})
	do.Provide(injector, func(_ do.Injector) (ports.ProjectIDGenerator, error) {
		return memory.ProjectIDGenerator{}, nil
	})

	// User use cases.
	do.Provide(injector, func(i do.Injector) (ports.CreateUserUseCase, error) {
		svc, err := app.NewCreateUserService(do.MustInvoke[ports.UserStore](i), do.MustInvoke[ports.UserIDGenerator](i), logger)
		return svc, err
	})
	do.Provide(injector, func(i do.Injector) (ports.ReadUserUseCase, error) {
		svc, err := app.NewReadUserService(do.MustInvoke[ports.UserStore](i), logger)
		return svc, err
	})
	do.Provide(injector, func(i do.Injector) (ports.UpdateUserUseCase, error) {
		svc, err := app.NewUpdateUserService(do.MustInvoke[ports.UserStore](i), logger)
		return svc, err
	})
	do.Provide(injector, func(i do.Injector) (ports.DeleteUserUseCase, error) {
		svc, err := app.NewDeleteUserService(do.MustInvoke[ports.UserStore](i), logger)
		return svc, err
	})

	// Task use cases.
	do.Provide(injector, func(i do.Injector) (ports.CreateTaskUseCase, error) {
		svc, err := app.NewCreateTaskService(
			do.MustInvoke[ports.TaskStore](i),
			do.MustInvoke[ports.UserStore](i),
			do.MustInvoke[ports.TaskIDGenerator](i),
			logger,
		)
		return svc, err
	})
	do.Provide(injector, func(i do.Injector) (ports.ReadTaskUseCase, error) {
		svc, err := app.NewReadTaskService(do.MustInvoke[ports.TaskStore](i), logger)
		return svc, err
	})
	do.Provide(injector, func(i do.Injector) (ports.UpdateTaskUseCase, error) {
		svc, err := app.NewUpdateTaskService(do.MustInvoke[ports.TaskStore](i), do.MustInvoke[ports.UserStore](i), logger)
		return svc, err
	})
	do.Provide(injector, func(i do.Injector) (ports.DeleteTaskUseCase, error) {
		svc, err := app.NewDeleteTaskService(do.MustInvoke[ports.TaskStore](i), logger)
		return svc, err
	})

	// Project use cases.
	do.Provide(injector, func(i do.Injector) (ports.CreateProjectUseCase, error) {
		svc, err := app.NewCreateProjectService(do.MustInvoke[ports.ProjectStore](i), do.MustInvoke[ports.ProjectIDGenerator](i), logger)
		return svc, err
	})
	do.Provide(injector, func(i do.Injector) (ports.ReadProjectUseCase, error) {
		svc, err := app.NewReadProjectService(do.MustInvoke[ports.ProjectStore](i), logger)
		return svc, err
	})
	do.Provide(injector, func(i do.Injector) (ports.UpdateProjectUseCase, error) {
		svc, err := app.NewUpdateProjectService(do.MustInvoke[ports.ProjectStore](i), logger)
		return svc, err
	})
	do.Provide(injector, func(i do.Injector) (ports.DeleteProjectUseCase, error) {
		svc, err := app.NewDeleteProjectService(do.MustInvoke[ports.ProjectStore](i), logger)
		return svc, err
	})
	do.Provide(injector, func(i do.Injector) (ports.AddTaskToProjectUseCase, error) {
		svc, err := app.NewAddTaskToProjectService(do.MustInvoke[ports.ProjectStore](i), do.MustInvoke[ports.TaskStore](i), logger)
		return svc, err
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	// Handlers.
	do.Provide(injector, func(i do.Injector) (*handlers.UserHandler, error) {
		return handlers.NewUserHandler(
			do.MustInvoke[ports.CreateUserUseCase](i),
			do.MustInvoke[ports.ReadUserUseCase](i),
			do.MustInvoke[ports.UpdateUserUseCase](i),
			do.MustInvoke[ports.DeleteUserUseCase](i),
		), nil
	})
	do.Provide(injector, func(i do.Injector) (*handlers.TaskHandler, error) {
		return handlers.NewTaskHandler(
			do.MustInvoke[ports.CreateTaskUseCase](i),
			do.MustInvoke[ports.ReadTaskUseCase](i),
			do.MustInvoke[ports.UpdateTaskUseCase](i),
			do.MustInvoke[ports.DeleteTaskUseCase](i),
		), nil
	})
	do.Provide(injector, func(i do.Injector) (*handlers.ProjectHandler, error) {
		return handlers.NewProjectHandler(
			do.MustInvoke[ports.CreateProjectUseCase](i),
			do.MustInvoke[ports.ReadProjectUseCase](i),
			do.MustInvoke[ports.UpdateProjectUseCase](i),
			do.MustInvoke[ports.DeleteProjectUseCase](i),
			do.MustInvoke[ports.AddTaskToProjectUseCase](i),
		), nil
	})
	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	// Router and server.
	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		userH := do.MustInvoke[*handlers.UserHandler](i)
		taskH := do.MustInvoke[*handlers.TaskHandler](i)
		projH := do.MustInvoke[*handlers.ProjectHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(userH, taskH, projH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.Telemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
