package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel"

	"github.com/jsamuelsen11/mirri-validator/internal/platform/telemetry"
)

// Tests in this file install global providers and do not run in parallel.

func TestInitProviders(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  error
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp over http", exporter: telemetry.ExporterOTLP, endpoint: "http://localhost:4318"},
		{name: "otlp bare host", exporter: telemetry.ExporterOTLP, endpoint: "localhost:4318"},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, wantErr: telemetry.ErrMissingEndpoint},
		{name: "unknown exporter", exporter: "zipkin", wantErr: telemetry.ErrUnsupportedExporter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp, err := telemetry.InitTracer(ctx, "test-service", tt.exporter, tt.endpoint)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("InitTracer() error = %v, want %v", err, tt.wantErr)
			}
			if tp != nil {
				// Without a collector the OTLP flush fails; only the
				// provider construction is under test.
				t.Cleanup(func() { _ = tp.Shutdown(ctx) })
			}

			mp, err := telemetry.InitMeter(ctx, "test-service", tt.exporter, tt.endpoint)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("InitMeter() error = %v, want %v", err, tt.wantErr)
			}
			if mp != nil {
				t.Cleanup(func() { _ = mp.Shutdown(ctx) })
			}

			if tt.wantErr == nil && (tp == nil || mp == nil) {
				t.Fatal("providers are nil without an error")
			}
		})
	}
}

func TestInitTracer_InstallsPropagators(t *testing.T) {
	ctx := context.Background()

	tp, err := telemetry.InitTracer(ctx, "test-service", telemetry.ExporterStdout, "")
	if err != nil {
		t.Fatalf("InitTracer() error = %v", err)
	}
	t.Cleanup(func() { _ = tp.Shutdown(ctx) })

	fields := map[string]bool{}
	for _, f := range otel.GetTextMapPropagator().Fields() {
		fields[f] = true
	}
	for _, want := range []string{"traceparent", "baggage"} {
		if !fields[want] {
			t.Errorf("propagator fields %v missing %q", fields, want)
		}
	}
	if otel.GetTracerProvider() != tp {
		t.Error("global tracer provider was not replaced")
	}
}

func TestSetup(t *testing.T) {
	ctx := context.Background()

	p, err := telemetry.Setup(ctx, telemetry.Options{
		ServiceName: "test-service",
		Exporter:    telemetry.ExporterStdout,
	})
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if p.Tracer == nil || p.Meter == nil || p.Metrics == nil {
		t.Fatalf("Setup() = %+v, want every provider set", p)
	}
	if err := p.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestSetup_Failure(t *testing.T) {
	_, err := telemetry.Setup(context.Background(), telemetry.Options{
		ServiceName: "test-service",
		Exporter:    telemetry.ExporterOTLP,
	})
	if !errors.Is(err, telemetry.ErrMissingEndpoint) {
		t.Fatalf("Setup() error = %v, want ErrMissingEndpoint", err)
	}
}

func TestProviders_ZeroValueShutdown(t *testing.T) {
	t.Parallel()

	var p telemetry.Providers
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() on disabled providers = %v, want nil", err)
	}
}
