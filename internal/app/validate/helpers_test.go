package validate_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/jsamuelsen11/mirri-validator/internal/domain/report"
	"github.com/jsamuelsen11/mirri-validator/internal/domain/schema"
	"github.com/jsamuelsen11/mirri-validator/internal/domain/workbook"
)

func testLayout() schema.Layout {
	return schema.Layout{
		Sheets: []schema.SheetTemplate{
			{Name: "Growth media", HeaderRow: 1, Headers: []string{"Acronym", "Description"}},
			{Name: "Strains", HeaderRow: 1, Headers: []string{"Accession number", "Taxon name"}, KeyColumn: "Accession number"},
		},
		RecordSheet: "Strains",
		KeyColumn:   "Accession number",
	}
}

func testSchema(t *testing.T) *schema.Schema {
	t.Helper()

	s, err := schema.New("test", []schema.Entry{
		{Label: "Accession number", Mandatory: true, Type: schema.TypeString},
		{Label: "Taxon name", Mandatory: true, Type: schema.TypeString},
		{Label: "Restrictions on use", Type: schema.TypeInteger},
		{Label: "Recommended growth temperature", Type: schema.TypeFloat},
		{Label: "Date of deposit", Type: schema.TypeDatetime},
	}, testLayout())
	if err != nil {
		t.Fatalf("schema.New() error = %v", err)
	}
	return s
}

func validWorkbook() workbook.Sheets {
	return workbook.Sheets{
		{Name: "Growth media", Rows: [][]string{{"Acronym", "Description"}, {"MA2", "Malt agar"}}},
		{Name: "Strains", Rows: [][]string{
			{"Accession number", "Taxon name", "Recommended growth temperature"},
			{"CC001", "Aspergillus niger", "25"},
			{"CC002", "Penicillium roqueforti", "30.5"},
		}},
	}
}

func collect(seq iter.Seq[report.Error]) []report.Error {
	return slices.Collect(seq)
}
