// Package telemetry sets up OpenTelemetry tracing and metrics for the
// validator. Spans and metrics go to stdout during development and to an
// OTLP/HTTP collector in deployed environments.
//
//	p, err := telemetry.Setup(ctx, telemetry.Options{
//		ServiceName: "mirri-validator",
//		Exporter:    telemetry.ExporterOTLP,
//		Endpoint:    "http://otel-collector:4318",
//	})
//	defer p.Shutdown(ctx)
//
//	p.Metrics.RecordValidation(ctx, "20200601", "invalid", counts, elapsed)
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Supported exporter names.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

var (
	// ErrUnsupportedExporter is returned for exporter names other than
	// ExporterStdout and ExporterOTLP.
	ErrUnsupportedExporter = errors.New("unsupported exporter")
	// ErrMissingEndpoint is returned when ExporterOTLP has no endpoint.
	ErrMissingEndpoint = errors.New("otlp exporter requires an endpoint")
)

// Attribute keys shared by spans and metrics.
var (
	AttrHTTPMethod    = attribute.Key("http.method")
	AttrHTTPStatus    = attribute.Key("http.status_code")
	AttrHTTPRoute     = attribute.Key("http.route")
	AttrPeerService   = attribute.Key("peer.service")
	AttrResult        = attribute.Key("result")
	AttrSchemaVersion = attribute.Key("mirri.schema_version")
	AttrFindingKind   = attribute.Key("mirri.finding_kind")
)

// Options selects where telemetry is exported.
type Options struct {
	ServiceName string
	Exporter    string
	Endpoint    string
}

// Providers owns the SDK providers created by Setup. The zero value is a
// disabled set: Metrics is nil and Shutdown does nothing.
type Providers struct {
	Tracer  *sdktrace.TracerProvider
	Meter   *sdkmetric.MeterProvider
	Metrics *Metrics
}

// Setup installs global tracer and meter providers and registers the
// service's instruments. Anything already started is shut down again when a
// later step fails.
func Setup(ctx context.Context, opts Options) (*Providers, error) {
	p := &Providers{}

	var err error
	if p.Tracer, err = InitTracer(ctx, opts.ServiceName, opts.Exporter, opts.Endpoint); err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}
	if p.Meter, err = InitMeter(ctx, opts.ServiceName, opts.Exporter, opts.Endpoint); err != nil {
		return nil, errors.Join(fmt.Errorf("init meter: %w", err), p.Shutdown(ctx))
	}
	if p.Metrics, err = NewMetrics(p.Meter, opts.ServiceName); err != nil {
		return nil, errors.Join(err, p.Shutdown(ctx))
	}
	return p, nil
}

// Shutdown flushes and stops whichever providers were started.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	if p.Tracer != nil {
		if err := p.Tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if p.Meter != nil {
		if err := p.Meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

// InitTracer creates a batching TracerProvider for exporter, installs it as
// the global provider and sets the W3C trace context and baggage
// propagators. The caller shuts the provider down.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, err
	}

	var spans sdktrace.SpanExporter
	switch exporter {
	case ExporterStdout:
		spans, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	case ExporterOTLP:
		var host string
		var insecure bool
		if host, insecure, err = collector(endpoint); err != nil {
			return nil, err
		}
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
		if insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		spans, err = otlptracehttp.New(ctx, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExporter, exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("creating %s span exporter: %w", exporter, err)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(spans), sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

// InitMeter creates a MeterProvider with a periodic reader for exporter and
// installs it as the global provider. The caller shuts the provider down.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, err
	}

	var out sdkmetric.Exporter
	switch exporter {
	case ExporterStdout:
		out, err = stdoutmetric.New()
	case ExporterOTLP:
		var host string
		var insecure bool
		if host, insecure, err = collector(endpoint); err != nil {
			return nil, err
		}
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
		if insecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		out, err = otlpmetrichttp.New(ctx, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExporter, exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("creating %s metric exporter: %w", exporter, err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(out)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}

func newResource(serviceName string) (*resource.Resource, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}
	return res, nil
}

// collector splits an OTLP endpoint URL into the host:port the exporters
// expect and whether plain HTTP is used. A bare host:port is taken as
// plain HTTP.
func collector(endpoint string) (host string, insecure bool, err error) {
	if endpoint == "" {
		return "", false, ErrMissingEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint, true, nil
	}
	return u.Host, u.Scheme != "https", nil
}
