// Package parser reads MIRRI workbooks into record entities. It resolves
// growth media from the "Growth media" sheet and cross-checks the record
// sheet's references against them, reporting problems per record
// identifier instead of failing.
package parser

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/mirri-validator/internal/domain/medium"
	"github.com/jsamuelsen11/mirri-validator/internal/domain/schema"
	"github.com/jsamuelsen11/mirri-validator/internal/domain/workbook"
	"github.com/jsamuelsen11/mirri-validator/internal/ports"
)

// Sheet and column labels read by the parser.
const (
	MediaSheet = "Growth media"

	ColumnID                      = "ID"
	ColumnName                    = "Name"
	ColumnAcronym                 = "Acronym"
	ColumnDescription             = "Description"
	ColumnFullDescription         = "Full description"
	ColumnIngredients             = "Ingredients"
	ColumnOtherName               = "Other name"
	ColumnPH                      = "pH"
	ColumnSterilizationConditions = "Sterilization conditions"

	ColumnMedium      = "Recommended medium for growth"
	ColumnTemperature = "Recommended growth temperature"
)

// textColumns maps optional text columns of the media sheet to fields.
var textColumns = []struct {
	column string
	field  medium.Field
}{
	{ColumnName, medium.FieldRecordName},
	{ColumnDescription, medium.FieldDescription},
	{ColumnFullDescription, medium.FieldFullDescription},
	{ColumnIngredients, medium.FieldIngredients},
	{ColumnOtherName, medium.FieldOtherName},
	{ColumnSterilizationConditions, medium.FieldSterilizationConditions},
}

// Compile-time check that Parser implements ports.RecordParser.
var _ ports.RecordParser = (*Parser)(nil)

// Parser implements ports.RecordParser for MIRRI workbooks.
type Parser struct {
	opener  ports.WorkbookOpener
	schemas ports.SchemaSource
	logger  *slog.Logger
}

// New creates a Parser. A nil logger discards log output.
func New(opener ports.WorkbookOpener, schemas ports.SchemaSource, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Parser{opener: opener, schemas: schemas, logger: logger}
}

// Parse opens content and builds the growth media, then checks every record
// row of the schema's record sheet. Problems with individual media or
// records land in the result; an error means parsing could not run.
func (p *Parser) Parse(ctx context.Context, content []byte, version string) (*ports.ParseResult, error) {
	sch, err := p.schemas.Schema(ctx, version)
	if err != nil {
		return nil, fmt.Errorf("parsing records: %w", err)
	}

	wb, err := p.opener.Open(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("parsing records: %w", err)
	}

	res := ports.NewParseResult()
	if err := p.parseMedia(wb, sch.Layout(), res); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := p.parseRecords(wb, sch.Layout(), res); err != nil {
		return nil, err
	}

	p.logger.DebugContext(ctx, "records parsed",
		slog.Int("media", len(res.Records)),
		slog.Int("problems", res.ProblemCount()),
	)
	return res, nil
}

func (p *Parser) parseMedia(wb workbook.Workbook, layout schema.Layout, res *ports.ParseResult) error {
	if !workbook.HasSheet(wb, MediaSheet) {
		return nil
	}
	_, rows, err := workbook.Table(wb, MediaSheet, layout.HeaderRowOf(MediaSheet))
	if err != nil {
		return fmt.Errorf("reading %s: %w", MediaSheet, err)
	}

	for _, row := range rows {
		acronym := row.Get(ColumnAcronym)
		if acronym == "" {
			res.AddProblem(fmt.Sprintf("%s row %d", MediaSheet, row.Number),
				fmt.Sprintf("The '%s' is missing for the growth medium in row %d", ColumnAcronym, row.Number))
			continue
		}

		m, ok := mediumFromRow(row, acronym, res)
		if !ok {
			continue
		}

		existing, dup := res.Records[acronym]
		switch {
		case !dup:
			res.Records[acronym] = m
		case existing.Matches(m, medium.FieldRecordID):
			existing.MergeFrom(m)
		default:
			res.AddProblem(acronym,
				fmt.Sprintf("The growth medium %s is defined more than once with conflicting values", acronym))
		}
	}
	return nil
}

// mediumFromRow builds a medium from a media sheet row, reporting malformed
// numeric cells under the acronym. ok is false when the row is unusable.
func mediumFromRow(row workbook.Row, acronym string, res *ports.ParseResult) (*medium.GrowthMedium, bool) {
	values := map[string]any{medium.FieldAcronym.String(): acronym}
	for _, c := range textColumns {
		if v := row.Get(c.column); v != "" {
			values[c.field.String()] = v
		}
	}

	valid := true
	if v := row.Get(ColumnID); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			res.AddProblem(acronym, fmt.Sprintf("The growth medium ID '%s' is not a whole number", v))
			valid = false
		} else {
			values[medium.FieldRecordID.String()] = id
		}
	}
	if v := row.Get(ColumnPH); v != "" {
		ph, ok := number(v)
		if !ok {
			res.AddProblem(acronym, fmt.Sprintf("The pH '%s' of growth medium %s is not a number", v, acronym))
			valid = false
		} else {
			values[medium.FieldPH.String()] = ph
		}
	}
	if !valid {
		return nil, false
	}

	m, err := medium.New(values)
	if err != nil {
		res.AddProblem(acronym, err.Error())
		return nil, false
	}
	return m, true
}

func (p *Parser) parseRecords(wb workbook.Workbook, layout schema.Layout, res *ports.ParseResult) error {
	_, rows, err := workbook.Table(wb, layout.RecordSheet, layout.HeaderRowOf(layout.RecordSheet))
	if err != nil {
		return fmt.Errorf("reading %s: %w", layout.RecordSheet, err)
	}

	for _, row := range rows {
		id := row.Get(layout.KeyColumn)
		if id == "" {
			// Missing identifiers are reported by the content pass.
			continue
		}

		for _, ref := range splitList(row.Get(ColumnMedium)) {
			if _, known := res.Records[ref]; known || isRecordID(ref) {
				continue
			}
			res.AddProblem(id, fmt.Sprintf("The growth medium '%s' is not defined in the '%s' sheet", ref, MediaSheet))
		}

		for _, t := range splitList(row.Get(ColumnTemperature)) {
			if _, ok := number(t); !ok {
				res.AddProblem(id, fmt.Sprintf("The '%s' value '%s' is not a number", ColumnTemperature, t))
			}
		}
	}
	return nil
}

// splitList splits a multi-valued cell on ';', '/' or ',' and drops empty
// items.
func splitList(v string) []string {
	parts := strings.FieldsFunc(v, func(r rune) bool {
		return r == ';' || r == '/' || r == ','
	})
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// number parses a finite decimal number. NaN and infinities are rejected.
func number(v string) (float64, bool) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func isRecordID(v string) bool {
	n, err := strconv.ParseInt(v, 10, 64)
	return err == nil && n > 0
}
