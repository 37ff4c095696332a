// Package workbook is the view of an opened spreadsheet that validators
// consume: named sheets made of rows of raw cell text. Decoding the
// container format is left to an adapter.
package workbook

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jsamuelsen11/mirri-validator/internal/domain"
)

// Workbook is an opened spreadsheet.
type Workbook interface {
	// SheetNames returns the sheet names in workbook order.
	SheetNames() []string

	// Rows returns every row of the named sheet as raw cell text. Trailing
	// empty cells may be omitted. Returns domain.ErrNotFound if the sheet
	// does not exist.
	Rows(sheet string) ([][]string, error)
}

// Sheet is one named grid of cells.
type Sheet struct {
	Name string
	Rows [][]string
}

// Sheets is an in-memory Workbook.
type Sheets []Sheet

// Compile-time interface check.
var _ Workbook = Sheets(nil)

// SheetNames returns the sheet names in order.
func (s Sheets) SheetNames() []string {
	names := make([]string, len(s))
	for i, sh := range s {
		names[i] = sh.Name
	}
	return names
}

// Rows returns the rows of the named sheet.
func (s Sheets) Rows(sheet string) ([][]string, error) {
	for _, sh := range s {
		if sh.Name == sheet {
			return sh.Rows, nil
		}
	}
	return nil, fmt.Errorf("sheet %q: %w", sheet, domain.ErrNotFound)
}

// HasSheet reports whether wb contains the named sheet.
func HasSheet(wb Workbook, name string) bool {
	return slices.Contains(wb.SheetNames(), name)
}

// Row is one data row keyed by header label.
type Row struct {
	// Number is the 1-based row number within the sheet.
	Number  int
	headers []string
	cells   []string
}

// Get returns the trimmed raw value of the labelled column, or "" when the
// column is absent or the cell is blank.
func (r Row) Get(label string) string {
	i := slices.Index(r.headers, label)
	if i < 0 || i >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[i])
}

// IsBlank reports whether every cell of the row is blank.
func (r Row) IsBlank() bool {
	for _, c := range r.cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Headers returns the column labels in sheet order.
func (r Row) Headers() []string {
	return r.headers
}

// Table reads the named sheet as a header row followed by data rows.
// headerRow is 1-based; rows above it are skipped. Entirely blank data rows
// are dropped.
func Table(wb Workbook, sheet string, headerRow int) ([]string, []Row, error) {
	rows, err := wb.Rows(sheet)
	if err != nil {
		return nil, nil, err
	}
	if headerRow < 1 || headerRow > len(rows) {
		return nil, nil, fmt.Errorf("sheet %q has no header row %d: %w", sheet, headerRow, domain.ErrNotFound)
	}

	headers := make([]string, len(rows[headerRow-1]))
	for i, h := range rows[headerRow-1] {
		headers[i] = strings.TrimSpace(h)
	}

	out := make([]Row, 0, len(rows)-headerRow)
	for i := headerRow; i < len(rows); i++ {
		row := Row{Number: i + 1, headers: headers, cells: rows[i]}
		if row.IsBlank() {
			continue
		}
		out = append(out, row)
	}
	return headers, out, nil
}
