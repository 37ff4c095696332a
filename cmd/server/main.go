// Package main runs the workbook validation service. Dependencies are wired
// with samber/do v2; SIGINT and SIGTERM drain in-flight requests before the
// process exits.
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

	"github.com/jsamuelsen11/mirri-validator/internal/adapters/clients/registry"
	"github.com/jsamuelsen11/mirri-validator/internal/adapters/excel"
	adapthttp "github.com/jsamuelsen11/mirri-validator/internal/adapters/http"
	"github.com/jsamuelsen11/mirri-validator/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/mirri-validator/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/mirri-validator/internal/adapters/parser"
	"github.com/jsamuelsen11/mirri-validator/internal/adapters/schemas"
	"github.com/jsamuelsen11/mirri-validator/internal/app"
	"github.com/jsamuelsen11/mirri-validator/internal/platform/config"
	"github.com/jsamuelsen11/mirri-validator/internal/platform/health"
	"github.com/jsamuelsen11/mirri-validator/internal/platform/httpclient"
	"github.com/jsamuelsen11/mirri-validator/internal/platform/logging"
	"github.com/jsamuelsen11/mirri-validator/internal/platform/telemetry"
	"github.com/jsamuelsen11/mirri-validator/internal/ports"
)

const (
	drainTimeout = 15 * time.Second
	flushTimeout = 5 * time.Second
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

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel := &telemetry.Providers{}
	if cfg.Telemetry.Enabled {
		otel, err = telemetry.Setup(ctx, telemetry.Options{
			ServiceName: cfg.Telemetry.ServiceName,
			Exporter:    cfg.Telemetry.Exporter,
			Endpoint:    cfg.Telemetry.Endpoint,
		})
		if err != nil {
			return fmt.Errorf("initializing telemetry: %w", err)
		}
	}
	defer flush(otel, logger)

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)
	provideSchemas(injector)
	provideValidation(injector)
	provideHTTP(injector)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	if err := server.Listen(); err != nil {
		return err
	}

	logger.Info("validator ready",
		slog.String("addr", server.Addr()),
		slog.String("profile", profile),
		slog.String("schema_source", cfg.Schema.Source),
		slog.String("default_version", cfg.Validation.DefaultVersion),
	)

	serveErr := make(chan error, 1)
	go func() { serveErr <- server.Start() }()

	select {
	case <-ctx.Done():
		logger.Info("shutting down", slog.Any("cause", context.Cause(ctx)))
	case err := <-serveErr:
		return fmt.Errorf("server failed: %w", err)
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	if err := server.Shutdown(drainCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	<-serveErr

	logger.Info("shutdown complete")
	return nil
}

// flush exports buffered spans and metrics before exit.
func flush(p *telemetry.Providers, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	if err := p.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}

// provideSchemas registers the schema source: the embedded catalogue, or the
// registry client behind a TTL cache.
func provideSchemas(i do.Injector) {
	do.Provide(i, func(i do.Injector) (*registry.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		logger := do.MustInvoke[*slog.Logger](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		client := httpclient.New(&cfg.Schema.Registry, registry.ServiceName, metrics, logger)
		return registry.NewClient(client, logger), nil
	})

	do.Provide(i, func(i do.Injector) (ports.SchemaSource, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.Schema.Source == config.SchemaSourceRegistry {
			return schemas.NewCache(do.MustInvoke[*registry.Client](i), cfg.Schema.CacheTTL), nil
		}
		embedded, err := schemas.NewEmbedded()
		if err != nil {
			return nil, fmt.Errorf("loading embedded schemas: %w", err)
		}
		return embedded, nil
	})
}

func provideValidation(i do.Injector) {
	do.Provide(i, func(i do.Injector) (ports.WorkbookOpener, error) {
		return excel.NewOpener(do.MustInvoke[*slog.Logger](i)), nil
	})

	do.Provide(i, func(i do.Injector) (ports.RecordParser, error) {
		return parser.New(
			do.MustInvoke[ports.WorkbookOpener](i),
			do.MustInvoke[ports.SchemaSource](i),
			do.MustInvoke[*slog.Logger](i),
		), nil
	})

	do.Provide(i, func(i do.Injector) (ports.ValidationService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return app.NewValidationService(
			do.MustInvoke[ports.WorkbookOpener](i),
			do.MustInvoke[ports.RecordParser](i),
			do.MustInvoke[ports.SchemaSource](i),
			do.MustInvoke[*telemetry.Metrics](i),
			do.MustInvoke[*slog.Logger](i),
			app.ValidationOptions{
				DefaultVersion: cfg.Validation.DefaultVersion,
				CheckTypes:     cfg.Validation.CheckTypes,
				ParallelPasses: cfg.Validation.ParallelPasses,
			},
		), nil
	})
}

// provideHTTP registers readiness checks, handlers, the router and the
// server.
func provideHTTP(i do.Injector) {
	do.Provide(i, func(i do.Injector) (ports.HealthRegistry, error) {
		cfg := do.MustInvoke[*config.Config](i)
		source := do.MustInvoke[ports.SchemaSource](i)

		reg := health.New(cfg.Server.ReadinessTimeout)
		reg.Register(health.Check("schema-catalogue", func(ctx context.Context) error {
			_, err := source.Schema(ctx, cfg.Validation.DefaultVersion)
			return err
		}))
		if cfg.Schema.Source == config.SchemaSourceRegistry {
			reg.Register(do.MustInvoke[*registry.Client](i))
		}
		return reg, nil
	})

	do.Provide(i, func(i do.Injector) (nethttp.Handler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		logger := do.MustInvoke[*slog.Logger](i)
		svc := do.MustInvoke[ports.ValidationService](i)

		return adapthttp.NewRouter(
			handlers.NewValidationHandler(svc, cfg.Validation.MaxUploadBytes),
			handlers.NewSchemaHandler(svc),
			handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(do.MustInvoke[*telemetry.Metrics](i)),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(i, func(i do.Injector) (*adapthttp.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), do.MustInvoke[*slog.Logger](i)), nil
	})
}
