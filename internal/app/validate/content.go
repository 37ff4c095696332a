package validate

import (
	"fmt"
	"iter"

	"github.com/jsamuelsen11/mirri-validator/internal/domain/report"
	"github.com/jsamuelsen11/mirri-validator/internal/domain/schema"
	"github.com/jsamuelsen11/mirri-validator/internal/domain/workbook"
)

// TemperatureLabel is the record column that must always hold a number when
// type checking is enabled.
const TemperatureLabel = "Recommended growth temperature"

// ContentOptions tunes the content pass.
type ContentOptions struct {
	// CheckTypes enables the column type check. Off by default.
	CheckTypes bool
	// NumericColumns must coerce cleanly to numbers when CheckTypes is set.
	// Nil selects TemperatureLabel.
	NumericColumns []string
}

// Content scans the record sheet row by row and reports every blank cell in
// a mandatory column. Findings follow row order, then column order within
// the row. Type findings, when enabled, come after all row findings.
func Content(wb workbook.Workbook, s *schema.Schema, opts ContentOptions) iter.Seq[report.Error] {
	return func(yield func(report.Error) bool) {
		layout := s.Layout()

		headers, rows, err := workbook.Table(wb, layout.RecordSheet, layout.HeaderRowOf(layout.RecordSheet))
		if err != nil {
			yield(report.Error{
				Message: fmt.Sprintf("The '%s' sheet could not be read: %v", layout.RecordSheet, err),
				Subject: layout.RecordSheet,
				Kind:    report.KindContent,
			})
			return
		}

		for _, row := range rows {
			id := recordID(row, layout)
			for _, col := range headers {
				if !s.IsMandatory(col) || row.Get(col) != "" {
					continue
				}
				if !yield(report.Error{
					Message: fmt.Sprintf("The '%s' is missing for strain with Accession Number %s", col, id),
					Subject: id,
					Kind:    report.KindContent,
				}) {
					return
				}
			}
		}

		if !opts.CheckTypes {
			return
		}
		numeric := opts.NumericColumns
		if numeric == nil {
			numeric = []string{TemperatureLabel}
		}
		for e := range columnTypes(headers, rows, s, numeric) {
			if !yield(e) {
				return
			}
		}
	}
}

// recordID returns the row's key column value, or a row label when blank.
func recordID(row workbook.Row, layout schema.Layout) string {
	if id := row.Get(layout.KeyColumn); id != "" {
		return id
	}
	return fmt.Sprintf("%s row %d", layout.RecordSheet, row.Number)
}
