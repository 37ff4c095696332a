package main

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/jsamuelsen11/mirri-validator/internal/domain/report"
	"github.com/jsamuelsen11/mirri-validator/internal/domain/schema"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var formats = []string{formatText, formatJSON, formatYAML}

func checkFormat(format string) error {
	if !slices.Contains(formats, format) {
		return fmt.Errorf("unsupported format %q, want one of %s", format, strings.Join(formats, ", "))
	}
	return nil
}

type findingView struct {
	Message string `json:"message" yaml:"message"`
	Subject string `json:"subject" yaml:"subject"`
	Kind    string `json:"kind" yaml:"kind"`
}

type logView struct {
	Name    string         `json:"name" yaml:"name"`
	RunID   string         `json:"run_id" yaml:"run_id"`
	Version string         `json:"schema_version" yaml:"schema_version"`
	Valid   bool           `json:"valid" yaml:"valid"`
	Errors  []findingView  `json:"errors" yaml:"errors"`
	Counts  map[string]int `json:"counts" yaml:"counts"`
}

func newLogView(l *report.Log, version string) logView {
	v := logView{
		Name:    l.Name(),
		RunID:   l.RunID(),
		Version: version,
		Valid:   !l.HasErrors(),
		Errors:  make([]findingView, 0, l.Len()),
		Counts:  make(map[string]int),
	}
	for e := range l.All() {
		v.Errors = append(v.Errors, findingView{Message: e.Message, Subject: e.Subject, Kind: e.Kind.String()})
	}
	for kind, n := range l.CountByKind() {
		v.Counts[kind.String()] = n
	}
	return v
}

func renderLog(w io.Writer, format string, l *report.Log, version string) error {
	view := newLogView(l, version)
	switch format {
	case formatJSON:
		return writeJSON(w, view)
	case formatYAML:
		return writeYAML(w, view)
	}

	if view.Valid {
		_, err := fmt.Fprintf(w, "%s: no errors found (schema %s)\n", view.Name, version)
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tSUBJECT\tMESSAGE")
	for _, e := range view.Errors {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Kind, e.Subject, e.Message)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s: %d errors (schema %s)\n", view.Name, len(view.Errors), version)
	return err
}

type fieldView struct {
	Label     string `json:"label" yaml:"label"`
	Mandatory bool   `json:"mandatory" yaml:"mandatory"`
	Type      string `json:"type" yaml:"type"`
}

func renderFields(w io.Writer, format string, s *schema.Schema, mandatoryOnly bool) error {
	var views []fieldView
	for _, e := range s.Entries() {
		if mandatoryOnly && !e.Mandatory {
			continue
		}
		views = append(views, fieldView{Label: e.Label, Mandatory: e.Mandatory, Type: e.Type.String()})
	}

	switch format {
	case formatJSON:
		return writeJSON(w, views)
	case formatYAML:
		return writeYAML(w, views)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tMANDATORY\tTYPE")
	for _, v := range views {
		mandatory := "no"
		if v.Mandatory {
			mandatory = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", v.Label, mandatory, v.Type)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	_, err = w.Write(data)
	return err
}
