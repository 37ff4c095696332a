package validate

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/jsamuelsen11/mirri-validator/internal/domain/report"
	"github.com/jsamuelsen11/mirri-validator/internal/domain/schema"
	"github.com/jsamuelsen11/mirri-validator/internal/domain/workbook"
)

// dateLayouts are the cell renderings accepted as datetimes.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"02/01/2006",
	"01-02-06",
	"2006/01/02",
}

// columnTypes infers each column's scalar type from its non-blank cells and
// reports columns whose inferred type does not fit the declared one. Numeric
// columns must parse as numbers in every non-blank cell. Columns with no
// values are skipped.
func columnTypes(headers []string, rows []workbook.Row, s *schema.Schema, numeric []string) iter.Seq[report.Error] {
	return func(yield func(report.Error) bool) {
		for _, col := range headers {
			values := columnValues(rows, col)
			if len(values) == 0 {
				continue
			}

			if slices.Contains(numeric, col) && !allMatch(values, isFloat) {
				if !yield(typeError(col, `The "%s" column has an invalid data type.`)) {
					return
				}
				continue
			}

			entry, ok := s.Lookup(col)
			if !ok {
				continue
			}
			if !compatible(entry.Type, inferType(values)) {
				if !yield(typeError(col, `The "%s" column has an invalid data type.`)) {
					return
				}
			}
		}
	}
}

func columnValues(rows []workbook.Row, col string) []string {
	var out []string
	for _, r := range rows {
		if v := r.Get(col); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// inferType picks the narrowest type that every value parses as.
func inferType(values []string) schema.Type {
	switch {
	case allMatch(values, isInteger):
		return schema.TypeInteger
	case allMatch(values, isFloat):
		return schema.TypeFloat
	case allMatch(values, isDatetime):
		return schema.TypeDatetime
	default:
		return schema.TypeString
	}
}

// compatible reports whether a column inferred as got may hold a field
// declared as want. Whole numbers are accepted for float fields.
func compatible(want, got schema.Type) bool {
	if want == got {
		return true
	}
	return want == schema.TypeFloat && got == schema.TypeInteger
}

func allMatch(values []string, pred func(string) bool) bool {
	for _, v := range values {
		if !pred(v) {
			return false
		}
	}
	return true
}

func isInteger(v string) bool {
	_, err := strconv.ParseInt(v, 10, 64)
	return err == nil
}

// isFloat accepts finite numbers only.
func isFloat(v string) bool {
	f, err := strconv.ParseFloat(v, 64)
	return err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
}

func isDatetime(v string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, v); err == nil {
			return true
		}
	}
	return false
}

func typeError(col, format string) report.Error {
	return report.Error{
		Message: fmt.Sprintf(format, col),
		Subject: col,
		Kind:    report.KindContent,
	}
}
