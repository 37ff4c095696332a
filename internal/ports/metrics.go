package ports

import (
	"context"
	"time"
)

// ValidationRecorder receives one observation per validation run.
// Implemented by the telemetry package; called by the application service.
type ValidationRecorder interface {
	// RecordValidation records a finished run. Outcome is "valid",
	// "invalid" or "error"; findings counts log entries by kind name.
	RecordValidation(ctx context.Context, version, outcome string, findings map[string]int, elapsed time.Duration)
}
