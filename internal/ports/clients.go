package ports

import (
	"context"

	"github.com/jsamuelsen11/mirri-validator/internal/domain/medium"
	"github.com/jsamuelsen11/mirri-validator/internal/domain/schema"
	"github.com/jsamuelsen11/mirri-validator/internal/domain/workbook"
)

// WorkbookOpener opens a workbook container. Implemented by the spreadsheet
// adapter; called by the application layer.
type WorkbookOpener interface {
	// Open decodes content into a Workbook. Any error means the bytes are
	// not a readable workbook container.
	Open(ctx context.Context, content []byte) (workbook.Workbook, error)
}

// RecordParser converts a workbook into record entities. Implemented by the
// record parser adapter; called by the entity validation pass.
type RecordParser interface {
	// Parse reads the workbook and returns the parsed records together with
	// per-record problems. A returned error means parsing could not run at
	// all; problems with individual records are reported in the result.
	Parse(ctx context.Context, content []byte, version string) (*ParseResult, error)
}

// SchemaSource supplies the field catalogue for a schema version.
// Implemented by the embedded catalogue and the remote schema registry client.
type SchemaSource interface {
	// Schema returns the schema for version.
	// Returns domain.ErrNotFound if the version is unknown.
	Schema(ctx context.Context, version string) (*schema.Schema, error)
}

// Problem is one parser-level finding about a record.
type Problem struct {
	Message string
}

// RecordErrors groups the problems reported for one record identifier, in
// the order the parser found them.
type RecordErrors struct {
	ID       string
	Problems []Problem
}

// ParseResult is the output of a RecordParser. Errors lists identifiers in
// the order they were first reported.
type ParseResult struct {
	Records map[string]*medium.GrowthMedium
	Errors  []RecordErrors
}

// NewParseResult returns an empty ParseResult.
func NewParseResult() *ParseResult {
	return &ParseResult{Records: make(map[string]*medium.GrowthMedium)}
}

// AddProblem records a problem for id, keeping first-seen identifier order.
func (r *ParseResult) AddProblem(id, message string) {
	for i := range r.Errors {
		if r.Errors[i].ID == id {
			r.Errors[i].Problems = append(r.Errors[i].Problems, Problem{Message: message})
			return
		}
	}
	r.Errors = append(r.Errors, RecordErrors{ID: id, Problems: []Problem{{Message: message}}})
}

// ProblemCount returns the total number of problems across identifiers.
func (r *ParseResult) ProblemCount() int {
	n := 0
	for _, e := range r.Errors {
		n += len(e.Problems)
	}
	return n
}
