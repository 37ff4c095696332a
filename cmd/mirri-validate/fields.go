package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/mirri-validator/internal/adapters/schemas"
)

func newFieldsCmd(root *rootOptions) *cobra.Command {
	var (
		format        string
		mandatoryOnly bool
	)

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List the field catalogue of a schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			env, err := root.environment(cmd)
			if err != nil {
				return err
			}
			s, err := env.source.Schema(cmd.Context(), root.version(env.cfg))
			if err != nil {
				return fmt.Errorf("loading schema: %w", err)
			}
			return renderFields(cmd.OutOrStdout(), format, s, mandatoryOnly)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json or yaml")
	cmd.Flags().BoolVar(&mandatoryOnly, "mandatory", false, "list only mandatory fields")
	return cmd
}

func newVersionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "List the schema versions built into this binary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			embedded, err := schemas.NewEmbedded()
			if err != nil {
				return fmt.Errorf("loading embedded schemas: %w", err)
			}
			for _, v := range embedded.Versions() {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
}
