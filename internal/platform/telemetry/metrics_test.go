package telemetry_test

import (
	"context"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/mirri-validator/internal/platform/telemetry"
)

func newTestMetrics(t *testing.T) (*telemetry.Metrics, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	metrics, err := telemetry.NewMetrics(mp, "test-service")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}
	return metrics, reader
}

// collectSums returns the total of every int64 sum, keyed by instrument name.
func collectSums(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	sums := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if data, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range data.DataPoints {
					sums[m.Name] += dp.Value
				}
			}
		}
	}
	return sums
}

func TestNewMetrics_RegistersInstruments(t *testing.T) {
	t.Parallel()

	m, _ := newTestMetrics(t)

	for name, registered := range map[string]bool{
		"ServerRequestDuration":  m.ServerRequestDuration != nil,
		"ServerRequestTotal":     m.ServerRequestTotal != nil,
		"ClientRequestDuration":  m.ClientRequestDuration != nil,
		"ClientRequestTotal":     m.ClientRequestTotal != nil,
		"ValidationRunDuration":  m.ValidationRunDuration != nil,
		"ValidationRunTotal":     m.ValidationRunTotal != nil,
		"ValidationFindingTotal": m.ValidationFindingTotal != nil,
	} {
		if !registered {
			t.Errorf("%s is nil", name)
		}
	}
}

func TestMetrics_RecordValidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m, reader := newTestMetrics(t)

	m.RecordValidation(ctx, "20200601", "invalid", map[string]int{"content": 3, "entity": 2}, 150*time.Millisecond)
	m.RecordValidation(ctx, "20200601", "valid", nil, 50*time.Millisecond)

	sums := collectSums(t, reader)
	if got := sums["validation.run.total"]; got != 2 {
		t.Errorf("validation.run.total = %d, want 2", got)
	}
	if got := sums["validation.finding.total"]; got != 5 {
		t.Errorf("validation.finding.total = %d, want 5", got)
	}
}

func TestMetrics_RecordValidation_NilReceiver(t *testing.T) {
	t.Parallel()

	var m *telemetry.Metrics
	m.RecordValidation(context.Background(), "20200601", "valid", nil, time.Second)
}
