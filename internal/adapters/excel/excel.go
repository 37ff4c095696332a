// Package excel adapts excelize to the workbook port. It is the only package
// that knows about the xlsx container; everything else sees a
// workbook.Workbook snapshot of cell text.
package excel

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/jsamuelsen11/mirri-validator/internal/domain/workbook"
	"github.com/jsamuelsen11/mirri-validator/internal/ports"
)

// Compile-time check that Opener implements ports.WorkbookOpener.
var _ ports.WorkbookOpener = (*Opener)(nil)

// Opener decodes xlsx bytes into an in-memory workbook snapshot.
type Opener struct {
	logger *slog.Logger
}

// NewOpener creates an Opener. A nil logger discards log output.
func NewOpener(logger *slog.Logger) *Opener {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Opener{logger: logger}
}

// Open reads every sheet of the workbook as formatted cell text. The
// returned snapshot is safe for concurrent reads.
func (o *Opener) Open(ctx context.Context, content []byte) (workbook.Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			o.logger.WarnContext(ctx, "failed to close workbook", slog.Any("error", cerr))
		}
	}()

	names := f.GetSheetList()
	sheets := make(workbook.Sheets, 0, len(names))
	for _, name := range names {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("reading sheet %q: %w", name, err)
		}
		sheets = append(sheets, workbook.Sheet{Name: name, Rows: rows})
	}

	o.logger.DebugContext(ctx, "workbook opened",
		slog.Int("sheets", len(sheets)),
		slog.Int("bytes", len(content)),
	)
	return sheets, nil
}

// Encode writes sheets as an xlsx workbook, all cells as text. The first
// sheet replaces the default sheet of a new file.
func Encode(sheets workbook.Sheets) ([]byte, error) {
	if len(sheets) == 0 {
		return nil, errors.New("encoding workbook: no sheets")
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, sh := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sh.Name); err != nil {
				return nil, fmt.Errorf("naming sheet %q: %w", sh.Name, err)
			}
		} else if _, err := f.NewSheet(sh.Name); err != nil {
			return nil, fmt.Errorf("adding sheet %q: %w", sh.Name, err)
		}

		for r, row := range sh.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				return nil, err
			}
			values := make([]any, len(row))
			for j, v := range row {
				values[j] = v
			}
			if err := f.SetSheetRow(sh.Name, cell, &values); err != nil {
				return nil, fmt.Errorf("writing sheet %q row %d: %w", sh.Name, r+1, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encoding workbook: %w", err)
	}
	return buf.Bytes(), nil
}
