package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/mirri-validator/internal/ports"
)

type validateOptions struct {
	format     string
	checkTypes bool
}

func newValidateCmd(root *rootOptions) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate <file.xlsx>",
		Short: "Validate a workbook and print its Error Log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format: text, json or yaml")
	cmd.Flags().BoolVar(&opts.checkTypes, "check-types", false, "also check column data types")
	return cmd
}

func runValidate(cmd *cobra.Command, root *rootOptions, opts *validateOptions, path string) error {
	if err := checkFormat(opts.format); err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading workbook: %w", err)
	}

	env, err := root.environment(cmd)
	if err != nil {
		return err
	}

	checkTypes := opts.checkTypes || env.cfg.Validation.CheckTypes
	version := root.version(env.cfg)

	log, err := env.service(checkTypes).Validate(cmd.Context(), ports.ValidationRequest{
		Name:    runName(path),
		Content: content,
		Version: version,
	})
	if err != nil {
		return err
	}

	if err := renderLog(cmd.OutOrStdout(), opts.format, log, version); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if log.HasErrors() {
		return errFindings
	}
	return nil
}

// runName is the file base name without its extension.
func runName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
