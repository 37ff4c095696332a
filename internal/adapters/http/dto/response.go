// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/mirri-validator/internal/domain/report"
	"github.com/jsamuelsen11/mirri-validator/internal/domain/schema"
)

// FindingResponse represents a single Error Log entry in HTTP responses.
type FindingResponse struct {
	Message string `json:"message"`
	Subject string `json:"subject"`
	Kind    string `json:"kind"`
}

// ErrorLogResponse represents the outcome of one validation run.
type ErrorLogResponse struct {
	Name   string            `json:"name"`
	RunID  string            `json:"run_id"`
	Valid  bool              `json:"valid"`
	Errors []FindingResponse `json:"errors"`
	Counts map[string]int    `json:"counts"`
}

// ToErrorLogResponse converts an Error Log to an HTTP response DTO. Findings
// keep the order in which the log recorded them.
func ToErrorLogResponse(l *report.Log) ErrorLogResponse {
	resp := ErrorLogResponse{
		Name:   l.Name(),
		RunID:  l.RunID(),
		Valid:  !l.HasErrors(),
		Errors: make([]FindingResponse, 0, l.Len()),
		Counts: make(map[string]int),
	}
	for e := range l.All() {
		resp.Errors = append(resp.Errors, FindingResponse{
			Message: e.Message,
			Subject: e.Subject,
			Kind:    e.Kind.String(),
		})
	}
	for kind, n := range l.CountByKind() {
		resp.Counts[kind.String()] = n
	}
	return resp
}

// FieldResponse represents one catalogue entry.
type FieldResponse struct {
	Label     string `json:"label"`
	Mandatory bool   `json:"mandatory"`
	Type      string `json:"type"`
}

// SheetResponse represents one required sheet of the workbook layout.
type SheetResponse struct {
	Name      string   `json:"name"`
	HeaderRow int      `json:"header_row"`
	KeyColumn string   `json:"key_column,omitempty"`
	Headers   []string `json:"headers"`
}

// SchemaResponse represents a field catalogue in HTTP responses.
type SchemaResponse struct {
	Version     string          `json:"version"`
	RecordSheet string          `json:"record_sheet"`
	KeyColumn   string          `json:"key_column"`
	Sheets      []SheetResponse `json:"sheets"`
	Fields      []FieldResponse `json:"fields"`
	Mandatory   []string        `json:"mandatory"`
}

// ToSchemaResponse converts a schema to an HTTP response DTO.
func ToSchemaResponse(s *schema.Schema) SchemaResponse {
	layout := s.Layout()
	resp := SchemaResponse{
		Version:     s.Version(),
		RecordSheet: layout.RecordSheet,
		KeyColumn:   layout.KeyColumn,
		Sheets:      make([]SheetResponse, len(layout.Sheets)),
		Mandatory:   s.Mandatory(),
	}
	for i, t := range layout.Sheets {
		resp.Sheets[i] = SheetResponse{
			Name:      t.Name,
			HeaderRow: t.HeaderRow,
			KeyColumn: t.KeyColumn,
			Headers:   t.Headers,
		}
	}
	entries := s.Entries()
	resp.Fields = make([]FieldResponse, len(entries))
	for i, e := range entries {
		resp.Fields[i] = FieldResponse{Label: e.Label, Mandatory: e.Mandatory, Type: e.Type.String()}
	}
	return resp
}
