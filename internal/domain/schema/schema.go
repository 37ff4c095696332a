// Package schema describes the field catalogue and workbook layout that a
// given schema version expects. Schemas are immutable once built and are
// shared read-only between validators.
package schema

import (
	"fmt"
	"slices"

	"github.com/jsamuelsen11/mirri-validator/internal/domain"
)

// BaselineVersion is the schema version used when a caller supplies none.
const BaselineVersion = "20200601"

// Type is the scalar type a field is expected to hold.
type Type string

const (
	TypeString   Type = "string"
	TypeInteger  Type = "integer"
	TypeFloat    Type = "float"
	TypeDatetime Type = "datetime"
)

// IsValid returns true if the type is one of the defined constants.
func (t Type) IsValid() bool {
	switch t {
	case TypeString, TypeInteger, TypeFloat, TypeDatetime:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// Entry is one field of the catalogue.
type Entry struct {
	Label     string
	Mandatory bool
	Type      Type
}

// Schema is the field catalogue and layout for one version.
type Schema struct {
	version string
	entries []Entry
	byLabel map[string]int
	layout  Layout
}

// New validates and builds a Schema. Labels must be unique and non-empty and
// every type must be known.
func New(version string, entries []Entry, layout Layout) (*Schema, error) {
	fields := make(map[string]string)
	if version == "" {
		fields["version"] = domain.MsgRequired
	}

	byLabel := make(map[string]int, len(entries))
	for i, e := range entries {
		switch {
		case e.Label == "":
			fields[fmt.Sprintf("entries[%d].label", i)] = domain.MsgRequired
		case !e.Type.IsValid():
			fields[fmt.Sprintf("entries[%d].type", i)] = fmt.Sprintf("invalid: %q", e.Type)
		}
		if _, dup := byLabel[e.Label]; dup && e.Label != "" {
			fields[fmt.Sprintf("entries[%d].label", i)] = fmt.Sprintf("duplicate label %q", e.Label)
		}
		byLabel[e.Label] = i
	}

	layout.validate(fields)
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	return &Schema{
		version: version,
		entries: slices.Clone(entries),
		byLabel: byLabel,
		layout:  layout.clone(),
	}, nil
}

// Version returns the schema version tag.
func (s *Schema) Version() string {
	return s.version
}

// Entries returns a copy of the catalogue in declaration order.
func (s *Schema) Entries() []Entry {
	return slices.Clone(s.entries)
}

// Lookup returns the entry for label.
func (s *Schema) Lookup(label string) (Entry, bool) {
	i, ok := s.byLabel[label]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i], true
}

// IsMandatory reports whether label names a mandatory field.
func (s *Schema) IsMandatory(label string) bool {
	e, ok := s.Lookup(label)
	return ok && e.Mandatory
}

// Mandatory returns the mandatory labels in catalogue order.
func (s *Schema) Mandatory() []string {
	var out []string
	for _, e := range s.entries {
		if e.Mandatory {
			out = append(out, e.Label)
		}
	}
	return out
}

// Layout returns the workbook template for this version.
func (s *Schema) Layout() Layout {
	return s.layout.clone()
}
