// Package schemas supplies field catalogues: the versions compiled into the
// binary, and a caching decorator for any ports.SchemaSource.
package schemas

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/jsamuelsen11/mirri-validator/internal/domain/schema"
)

// Document is the serialized form of a schema. The same shape is served by
// the remote schema registry as JSON.
type Document struct {
	Version     string          `json:"version" yaml:"version"`
	RecordSheet string          `json:"record_sheet" yaml:"record_sheet"`
	KeyColumn   string          `json:"key_column" yaml:"key_column"`
	Sheets      []SheetDocument `json:"sheets" yaml:"sheets"`
	Fields      []FieldDocument `json:"fields" yaml:"fields"`
}

// SheetDocument describes one required sheet.
type SheetDocument struct {
	Name      string   `json:"name" yaml:"name"`
	HeaderRow int      `json:"header_row" yaml:"header_row"`
	KeyColumn string   `json:"key_column,omitempty" yaml:"key_column,omitempty"`
	Headers   []string `json:"headers" yaml:"headers"`
}

// FieldDocument describes one catalogue entry.
type FieldDocument struct {
	Label     string `json:"label" yaml:"label"`
	Mandatory bool   `json:"mandatory" yaml:"mandatory"`
	Type      string `json:"type" yaml:"type"`
}

// Schema validates the document and builds a schema.Schema from it.
// Missing header rows default to 1.
func (d Document) Schema() (*schema.Schema, error) {
	entries := make([]schema.Entry, len(d.Fields))
	for i, f := range d.Fields {
		entries[i] = schema.Entry{Label: f.Label, Mandatory: f.Mandatory, Type: schema.Type(f.Type)}
	}

	layout := schema.Layout{RecordSheet: d.RecordSheet, KeyColumn: d.KeyColumn}
	for _, s := range d.Sheets {
		row := s.HeaderRow
		if row == 0 {
			row = 1
		}
		layout.Sheets = append(layout.Sheets, schema.SheetTemplate{
			Name:      s.Name,
			HeaderRow: row,
			Headers:   s.Headers,
			KeyColumn: s.KeyColumn,
		})
	}

	return schema.New(d.Version, entries, layout)
}

// FromSchema renders s back into its serialized form.
func FromSchema(s *schema.Schema) Document {
	layout := s.Layout()
	doc := Document{
		Version:     s.Version(),
		RecordSheet: layout.RecordSheet,
		KeyColumn:   layout.KeyColumn,
	}
	for _, t := range layout.Sheets {
		doc.Sheets = append(doc.Sheets, SheetDocument{
			Name:      t.Name,
			HeaderRow: t.HeaderRow,
			KeyColumn: t.KeyColumn,
			Headers:   t.Headers,
		})
	}
	for _, e := range s.Entries() {
		doc.Fields = append(doc.Fields, FieldDocument{Label: e.Label, Mandatory: e.Mandatory, Type: e.Type.String()})
	}
	return doc
}

// Decode parses a YAML schema document.
func Decode(data []byte) (*schema.Schema, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding schema document: %w", err)
	}
	return doc.Schema()
}
