package workbook_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/jsamuelsen11/mirri-validator/internal/domain"
	"github.com/jsamuelsen11/mirri-validator/internal/domain/workbook"
)

func testSheets() workbook.Sheets {
	return workbook.Sheets{
		{Name: "Version", Rows: [][]string{{"Version", "Date"}, {"5.1.2", "2020-06-01"}}},
		{Name: "Strains", Rows: [][]string{
			{"Accession number", " Taxon name "},
			{"CC001", "Aspergillus niger"},
			{"", "  "},
			{"CC002"},
		}},
	}
}

func TestSheets(t *testing.T) {
	t.Parallel()

	wb := testSheets()

	if got := wb.SheetNames(); !slices.Equal(got, []string{"Version", "Strains"}) {
		t.Errorf("SheetNames() = %v", got)
	}
	if !workbook.HasSheet(wb, "Strains") || workbook.HasSheet(wb, "Markers") {
		t.Error("HasSheet() mismatch")
	}
	if _, err := wb.Rows("Markers"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Rows(Markers) error = %v, want ErrNotFound", err)
	}
}

func TestTable(t *testing.T) {
	t.Parallel()

	headers, rows, err := workbook.Table(testSheets(), "Strains", 1)
	if err != nil {
		t.Fatalf("Table() error = %v", err)
	}

	if !slices.Equal(headers, []string{"Accession number", "Taxon name"}) {
		t.Errorf("headers = %q", headers)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2 (blank row dropped)", len(rows))
	}
	if rows[0].Number != 2 || rows[1].Number != 4 {
		t.Errorf("row numbers = %d, %d, want 2, 4", rows[0].Number, rows[1].Number)
	}
	if got := rows[0].Get("Taxon name"); got != "Aspergillus niger" {
		t.Errorf("Get(Taxon name) = %q", got)
	}
	if got := rows[1].Get("Taxon name"); got != "" {
		t.Errorf("short row Get(Taxon name) = %q, want empty", got)
	}
	if got := rows[0].Get("Unknown"); got != "" {
		t.Errorf("Get(Unknown) = %q, want empty", got)
	}
}

func TestTable_MissingHeaderRow(t *testing.T) {
	t.Parallel()

	_, _, err := workbook.Table(testSheets(), "Version", 5)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Table() error = %v, want ErrNotFound", err)
	}
}
