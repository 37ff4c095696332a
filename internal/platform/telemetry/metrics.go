package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the service's metric instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	ValidationRunDuration  metric.Float64Histogram
	ValidationRunTotal     metric.Int64Counter
	ValidationFindingTotal metric.Int64Counter
}

// NewMetrics registers every instrument on a meter named after the service.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	b := &builder{meter: mp.Meter(serviceName)}

	m := &Metrics{
		ServerRequestDuration: b.seconds("http.server.request.duration", "Duration of incoming HTTP requests"),
		ServerRequestTotal:    b.count("http.server.request.total", "Total number of incoming HTTP requests", "{request}"),
		ClientRequestDuration: b.seconds("http.client.request.duration", "Duration of schema registry requests"),
		ClientRequestTotal:    b.count("http.client.request.total", "Total number of schema registry requests", "{request}"),

		ValidationRunDuration:  b.seconds("validation.run.duration", "Duration of workbook validation runs"),
		ValidationRunTotal:     b.count("validation.run.total", "Total number of workbook validation runs", "{run}"),
		ValidationFindingTotal: b.count("validation.finding.total", "Total number of validation findings reported", "{finding}"),
	}
	if err := errors.Join(b.errs...); err != nil {
		return nil, err
	}
	return m, nil
}

// RecordValidation records one validation run with its findings counted by
// kind. Safe to call on a nil receiver.
func (m *Metrics) RecordValidation(ctx context.Context, version, outcome string, findings map[string]int, elapsed time.Duration) {
	if m == nil {
		return
	}

	attrs := metric.WithAttributes(
		AttrSchemaVersion.String(version),
		AttrResult.String(outcome),
	)
	m.ValidationRunDuration.Record(ctx, elapsed.Seconds(), attrs)
	m.ValidationRunTotal.Add(ctx, 1, attrs)

	for kind, n := range findings {
		m.ValidationFindingTotal.Add(ctx, int64(n), metric.WithAttributes(
			AttrSchemaVersion.String(version),
			AttrFindingKind.String(kind),
		))
	}
}

// builder collects instrument registration errors so NewMetrics can report
// them together.
type builder struct {
	meter metric.Meter
	errs  []error
}

func (b *builder) seconds(name, desc string) metric.Float64Histogram {
	h, err := b.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("creating %s: %w", name, err))
	}
	return h
}

func (b *builder) count(name, desc, unit string) metric.Int64Counter {
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("creating %s: %w", name, err))
	}
	return c
}
