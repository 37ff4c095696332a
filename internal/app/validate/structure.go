package validate

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/jsamuelsen11/mirri-validator/internal/domain/report"
	"github.com/jsamuelsen11/mirri-validator/internal/domain/schema"
	"github.com/jsamuelsen11/mirri-validator/internal/domain/workbook"
)

// Structure checks the workbook shape against layout: required sheets first,
// then each present sheet's header row and required headers, then the key
// column position. Any finding means the workbook cannot be scanned.
func Structure(wb workbook.Workbook, layout schema.Layout) iter.Seq[report.Error] {
	return func(yield func(report.Error) bool) {
		var present []schema.SheetTemplate
		for _, tpl := range layout.Sheets {
			if workbook.HasSheet(wb, tpl.Name) {
				present = append(present, tpl)
				continue
			}
			if !yield(structural(tpl.Name,
				fmt.Sprintf("The '%s' sheet is missing. Please check the provided excel template", tpl.Name))) {
				return
			}
		}

		headerRows := make(map[string][]string, len(present))
		for _, tpl := range present {
			headers, ok := headerRow(wb, tpl)
			if !ok {
				if !yield(structural(location(tpl),
					fmt.Sprintf("The '%s' sheet has no header row at row %d", tpl.Name, tpl.HeaderRow))) {
					return
				}
				continue
			}
			headerRows[tpl.Name] = headers

			for _, want := range tpl.Headers {
				if slices.Contains(headers, want) {
					continue
				}
				if !yield(structural(location(tpl),
					fmt.Sprintf("The '%s' column is missing in the '%s' sheet", want, tpl.Name))) {
					return
				}
			}
		}

		for _, tpl := range present {
			headers, ok := headerRows[tpl.Name]
			if !ok || tpl.KeyColumn == "" {
				continue
			}
			first := ""
			if len(headers) > 0 {
				first = headers[0]
			}
			if first == tpl.KeyColumn {
				continue
			}
			if !yield(structural(location(tpl),
				fmt.Sprintf("The '%s' sheet must start with the '%s' column, found '%s'", tpl.Name, tpl.KeyColumn, first))) {
				return
			}
		}
	}
}

// headerRow returns the trimmed header cells, or false when the sheet is
// shorter than the template's header row or that row is blank.
func headerRow(wb workbook.Workbook, tpl schema.SheetTemplate) ([]string, bool) {
	rows, err := wb.Rows(tpl.Name)
	if err != nil || tpl.HeaderRow < 1 || tpl.HeaderRow > len(rows) {
		return nil, false
	}

	raw := rows[tpl.HeaderRow-1]
	headers := make([]string, len(raw))
	blank := true
	for i, h := range raw {
		headers[i] = strings.TrimSpace(h)
		if headers[i] != "" {
			blank = false
		}
	}
	return headers, !blank
}

func location(tpl schema.SheetTemplate) string {
	return fmt.Sprintf("%s header row %d", tpl.Name, tpl.HeaderRow)
}

func structural(subject, msg string) report.Error {
	return report.Error{Message: msg, Subject: subject, Kind: report.KindStructural}
}
