package dto_test

import (
	"testing"

	"github.com/goccy/go-json"

	"github.com/jsamuelsen11/mirri-validator/internal/adapters/http/dto"
	"github.com/jsamuelsen11/mirri-validator/internal/domain/report"
	"github.com/jsamuelsen11/mirri-validator/internal/domain/schema"
)

func TestToErrorLogResponse(t *testing.T) {
	t.Parallel()

	l := report.New("strains")
	l.Add(report.Error{Message: "The 'Taxon name' is missing for strain with Accession Number CC 1", Subject: "CC 1", Kind: report.KindContent})
	l.Add(report.Error{Message: "The growth medium 'MEA' is not defined in the 'Growth media' sheet", Subject: "CC 1", Kind: report.KindEntity})
	l.Add(report.Error{Message: "The 'Taxon name' is missing for strain with Accession Number CC 2", Subject: "CC 2", Kind: report.KindContent})

	got := dto.ToErrorLogResponse(l)

	if got.Name != "strains" {
		t.Errorf("Name = %q, want %q", got.Name, "strains")
	}
	if got.RunID != l.RunID() {
		t.Errorf("RunID = %q, want %q", got.RunID, l.RunID())
	}
	if got.Valid {
		t.Error("Valid = true, want false")
	}
	if len(got.Errors) != 3 {
		t.Fatalf("len(Errors) = %d, want 3", len(got.Errors))
	}
	wantKinds := []string{"content", "entity", "content"}
	for i, want := range wantKinds {
		if got.Errors[i].Kind != want {
			t.Errorf("Errors[%d].Kind = %q, want %q", i, got.Errors[i].Kind, want)
		}
	}
	if got.Errors[2].Subject != "CC 2" {
		t.Errorf("Errors[2].Subject = %q, want %q", got.Errors[2].Subject, "CC 2")
	}
	if got.Counts["content"] != 2 || got.Counts["entity"] != 1 {
		t.Errorf("Counts = %v, want content=2 entity=1", got.Counts)
	}
}

func TestToErrorLogResponse_EmptyLogEncodesEmptyArray(t *testing.T) {
	t.Parallel()

	got := dto.ToErrorLogResponse(report.New("clean"))

	if !got.Valid {
		t.Error("Valid = false, want true")
	}

	data, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	errs, ok := raw["errors"].([]any)
	if !ok {
		t.Fatalf("errors = %v (%T), want empty array", raw["errors"], raw["errors"])
	}
	if len(errs) != 0 {
		t.Errorf("len(errors) = %d, want 0", len(errs))
	}
}

func TestToSchemaResponse(t *testing.T) {
	t.Parallel()

	layout := schema.Layout{
		RecordSheet: "Strains",
		KeyColumn:   "Accession number",
		Sheets: []schema.SheetTemplate{
			{Name: "Growth media", HeaderRow: 1, Headers: []string{"Acronym", "Description"}},
			{Name: "Strains", HeaderRow: 1, Headers: []string{"Accession number", "Taxon name"}},
		},
	}
	s, err := schema.New("20200601", []schema.Entry{
		{Label: "Accession number", Mandatory: true, Type: schema.TypeString},
		{Label: "Taxon name", Mandatory: true, Type: schema.TypeString},
		{Label: "Comment", Mandatory: false, Type: schema.TypeString},
	}, layout)
	if err != nil {
		t.Fatalf("schema.New() error = %v", err)
	}

	got := dto.ToSchemaResponse(s)

	if got.Version != "20200601" {
		t.Errorf("Version = %q, want %q", got.Version, "20200601")
	}
	if got.RecordSheet != "Strains" || got.KeyColumn != "Accession number" {
		t.Errorf("RecordSheet/KeyColumn = %q/%q", got.RecordSheet, got.KeyColumn)
	}
	if len(got.Sheets) != 2 || got.Sheets[0].Name != "Growth media" {
		t.Errorf("Sheets = %+v", got.Sheets)
	}
	if len(got.Fields) != 3 || got.Fields[2].Mandatory {
		t.Errorf("Fields = %+v", got.Fields)
	}
	if len(got.Mandatory) != 2 {
		t.Errorf("Mandatory = %v, want 2 labels", got.Mandatory)
	}
}
