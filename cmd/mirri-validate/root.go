package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/mirri-validator/internal/adapters/clients/registry"
	"github.com/jsamuelsen11/mirri-validator/internal/adapters/excel"
	"github.com/jsamuelsen11/mirri-validator/internal/adapters/parser"
	"github.com/jsamuelsen11/mirri-validator/internal/adapters/schemas"
	"github.com/jsamuelsen11/mirri-validator/internal/app"
	"github.com/jsamuelsen11/mirri-validator/internal/platform/config"
	"github.com/jsamuelsen11/mirri-validator/internal/platform/httpclient"
	"github.com/jsamuelsen11/mirri-validator/internal/platform/logging"
	"github.com/jsamuelsen11/mirri-validator/internal/ports"
)

// defaultCLILogLevel keeps service progress records off the terminal unless
// asked for.
const defaultCLILogLevel = "warn"

// errFindings is returned by the validate command when the Error Log is not
// empty. main turns it into exit status 1.
var errFindings = errors.New("workbook has validation errors")

type rootOptions struct {
	schemaVersion string
	logLevel      string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "mirri-validate",
		Short:         "Validate MIRRI culture collection workbooks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.schemaVersion, "schema-version", "",
		"schema version to validate against (default from configuration)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", defaultCLILogLevel,
		"log level: debug, info, warn or error")

	cmd.AddCommand(
		newValidateCmd(opts),
		newFieldsCmd(opts),
		newVersionsCmd(),
		newTemplateCmd(opts),
	)
	return cmd
}

// environment is what every subcommand needs: configuration, a logger on
// stderr and a schema source.
type environment struct {
	cfg    *config.Config
	logger *slog.Logger
	source ports.SchemaSource
}

func (o *rootOptions) environment(cmd *cobra.Command) (*environment, error) {
	cfg, err := config.Default()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if _, err := logging.ParseLevel(o.logLevel); err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	logger := logging.New(o.logLevel, cfg.Log.Format, cmd.ErrOrStderr())

	source, err := schemaSource(cfg, logger)
	if err != nil {
		return nil, err
	}
	return &environment{cfg: cfg, logger: logger, source: source}, nil
}

// version returns the schema version selected by flag or configuration.
func (o *rootOptions) version(cfg *config.Config) string {
	if o.schemaVersion != "" {
		return o.schemaVersion
	}
	return cfg.Validation.DefaultVersion
}

func schemaSource(cfg *config.Config, logger *slog.Logger) (ports.SchemaSource, error) {
	if cfg.Schema.Source == config.SchemaSourceRegistry {
		client := httpclient.New(&cfg.Schema.Registry, registry.ServiceName, nil, logger)
		return schemas.NewCache(registry.NewClient(client, logger), cfg.Schema.CacheTTL), nil
	}
	embedded, err := schemas.NewEmbedded()
	if err != nil {
		return nil, fmt.Errorf("loading embedded schemas: %w", err)
	}
	return embedded, nil
}

func (e *environment) service(checkTypes bool) *app.ValidationService {
	opener := excel.NewOpener(e.logger)
	return app.NewValidationService(
		opener,
		parser.New(opener, e.source, e.logger),
		e.source,
		nil,
		e.logger,
		app.ValidationOptions{
			DefaultVersion: e.cfg.Validation.DefaultVersion,
			CheckTypes:     checkTypes,
			ParallelPasses: e.cfg.Validation.ParallelPasses,
		},
	)
}
