package validate

import (
	"context"
	"fmt"
	"iter"

	"github.com/jsamuelsen11/mirri-validator/internal/domain/report"
	"github.com/jsamuelsen11/mirri-validator/internal/ports"
)

// ParserSubject is the subject used when the record parser fails outright.
const ParserSubject = "Record parser"

// Entities runs the record parser over content and yields its per-record
// problems. The parser runs once, before the sequence is returned, so the
// sequence can be ranged over repeatedly without reparsing.
func Entities(ctx context.Context, parser ports.RecordParser, content []byte, version string) iter.Seq[report.Error] {
	res, err := parser.Parse(ctx, content, version)
	if err != nil {
		failure := report.Error{
			Message: fmt.Sprintf("The records could not be parsed: %v", err),
			Subject: ParserSubject,
			Kind:    report.KindEntity,
		}
		return func(yield func(report.Error) bool) {
			yield(failure)
		}
	}
	return EntityErrors(res)
}

// EntityErrors flattens parser problems into findings tagged with their
// record identifier. Identifier order and per-identifier problem order are
// both preserved.
func EntityErrors(res *ports.ParseResult) iter.Seq[report.Error] {
	return func(yield func(report.Error) bool) {
		if res == nil {
			return
		}
		for _, rec := range res.Errors {
			for _, p := range rec.Problems {
				if !yield(report.Error{Message: p.Message, Subject: rec.ID, Kind: report.KindEntity}) {
					return
				}
			}
		}
	}
}
