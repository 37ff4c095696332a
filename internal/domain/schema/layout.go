package schema

import (
	"fmt"
	"slices"

	"github.com/jsamuelsen11/mirri-validator/internal/domain"
)

// SheetTemplate is the expected shape of one required sheet.
type SheetTemplate struct {
	Name string
	// HeaderRow is the 1-based row holding the column headers. Rows above it
	// are leading metadata rows.
	HeaderRow int
	// Headers must all appear in the header row, in any order.
	Headers []string
	// KeyColumn, when set, must be the first header of the row.
	KeyColumn string
}

// Layout is the workbook template for a schema version.
type Layout struct {
	Sheets []SheetTemplate
	// RecordSheet names the primary record sheet scanned row by row.
	RecordSheet string
	// KeyColumn is the identifier column of the record sheet.
	KeyColumn string
}

// Sheet returns the template for the named sheet.
func (l Layout) Sheet(name string) (SheetTemplate, bool) {
	for _, s := range l.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return SheetTemplate{}, false
}

// HeaderRowOf returns the header row of the named sheet, defaulting to 1.
func (l Layout) HeaderRowOf(name string) int {
	if s, ok := l.Sheet(name); ok && s.HeaderRow > 0 {
		return s.HeaderRow
	}
	return 1
}

func (l Layout) validate(fields map[string]string) {
	if l.RecordSheet == "" {
		fields["layout.record_sheet"] = domain.MsgRequired
	} else if _, ok := l.Sheet(l.RecordSheet); !ok {
		fields["layout.record_sheet"] = fmt.Sprintf("sheet %q has no template", l.RecordSheet)
	}
	if l.KeyColumn == "" {
		fields["layout.key_column"] = domain.MsgRequired
	}
	for i, s := range l.Sheets {
		if s.Name == "" {
			fields[fmt.Sprintf("layout.sheets[%d].name", i)] = domain.MsgRequired
		}
		if s.HeaderRow < 1 {
			fields[fmt.Sprintf("layout.sheets[%d].header_row", i)] = fmt.Sprintf("must be >= 1, got %d", s.HeaderRow)
		}
	}
}

func (l Layout) clone() Layout {
	out := Layout{RecordSheet: l.RecordSheet, KeyColumn: l.KeyColumn}
	out.Sheets = make([]SheetTemplate, len(l.Sheets))
	for i, s := range l.Sheets {
		s.Headers = slices.Clone(s.Headers)
		out.Sheets[i] = s
	}
	return out
}
