package ports

import (
	"context"

	"github.com/jsamuelsen11/mirri-validator/internal/domain/report"
	"github.com/jsamuelsen11/mirri-validator/internal/domain/schema"
)

// ValidationService defines the service port for workbook validation.
// Implemented by the application layer; called by inbound adapters (HTTP
// handlers, the CLI).
type ValidationService interface {
	// Validate runs the full validation pipeline over a workbook and returns
	// the resulting Error Log. Findings about the workbook, including an
	// unreadable container, are reported in the log rather than as errors.
	// Returns domain.ErrNotFound if the schema version is unknown.
	Validate(ctx context.Context, req ValidationRequest) (*report.Log, error)

	// Schema returns the field catalogue for a schema version. An empty
	// version selects the configured default.
	// Returns domain.ErrNotFound if the version is unknown.
	Schema(ctx context.Context, version string) (*schema.Schema, error)
}

// ValidationRequest is the input of one validation run.
type ValidationRequest struct {
	// Name labels the run, typically the workbook file name without extension.
	Name string
	// Content is the raw workbook bytes.
	Content []byte
	// Version selects the schema version. Empty selects the configured default.
	Version string
}
