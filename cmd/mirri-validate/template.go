package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/mirri-validator/internal/adapters/excel"
	"github.com/jsamuelsen11/mirri-validator/internal/domain/schema"
	"github.com/jsamuelsen11/mirri-validator/internal/domain/workbook"
)

const templateFileMode = 0o644

func newTemplateCmd(root *rootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write an empty workbook with every required sheet and header",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := root.environment(cmd)
			if err != nil {
				return err
			}
			s, err := env.source.Schema(cmd.Context(), root.version(env.cfg))
			if err != nil {
				return fmt.Errorf("loading schema: %w", err)
			}
			data, err := excel.Encode(templateSheets(s.Layout()))
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, templateFileMode); err != nil {
				return fmt.Errorf("writing template: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (schema %s)\n", out, s.Version())
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "mirri-template.xlsx", "path of the workbook to write")
	return cmd
}

// templateSheets lays out each required sheet with its headers on the
// expected header row.
func templateSheets(layout schema.Layout) workbook.Sheets {
	sheets := make(workbook.Sheets, 0, len(layout.Sheets))
	for _, t := range layout.Sheets {
		rows := make([][]string, t.HeaderRow)
		rows[t.HeaderRow-1] = append([]string(nil), t.Headers...)
		sheets = append(sheets, workbook.Sheet{Name: t.Name, Rows: rows})
	}
	return sheets
}
