package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/jsamuelsen11/mirri-validator/internal/app/fanout"
	"github.com/jsamuelsen11/mirri-validator/internal/app/validate"
	"github.com/jsamuelsen11/mirri-validator/internal/domain/report"
	"github.com/jsamuelsen11/mirri-validator/internal/domain/schema"
	"github.com/jsamuelsen11/mirri-validator/internal/domain/workbook"
	"github.com/jsamuelsen11/mirri-validator/internal/ports"
)

// ContainerSubject is the subject of the finding reported for bytes that are
// not a readable workbook.
const ContainerSubject = "Excel file error"

// Run outcomes reported to the ValidationRecorder.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// passNames labels the content and entity passes in log records, in merge
// order.
var passNames = []string{"content", "entity"}

// Compile-time check that ValidationService implements ports.ValidationService.
var _ ports.ValidationService = (*ValidationService)(nil)

// ValidationOptions tunes a ValidationService.
type ValidationOptions struct {
	// DefaultVersion is used when a request names no schema version.
	// Empty selects schema.BaselineVersion.
	DefaultVersion string
	// CheckTypes enables the column type check of the content pass.
	CheckTypes bool
	// ParallelPasses runs the content and entity passes concurrently.
	ParallelPasses bool
}

// ValidationService implements ports.ValidationService. It resolves the
// schema, opens the workbook, gates on structure and then runs the content
// and entity passes, merging their findings content-first into one Log.
type ValidationService struct {
	opener   ports.WorkbookOpener
	parser   ports.RecordParser
	schemas  ports.SchemaSource
	recorder ports.ValidationRecorder
	logger   *slog.Logger
	opts     ValidationOptions
}

// NewValidationService creates a ValidationService. A nil recorder disables
// run metrics and a nil logger discards log output.
func NewValidationService(
	opener ports.WorkbookOpener,
	parser ports.RecordParser,
	schemas ports.SchemaSource,
	recorder ports.ValidationRecorder,
	logger *slog.Logger,
	opts ValidationOptions,
) *ValidationService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.DefaultVersion == "" {
		opts.DefaultVersion = schema.BaselineVersion
	}
	return &ValidationService{
		opener:   opener,
		parser:   parser,
		schemas:  schemas,
		recorder: recorder,
		logger:   logger,
		opts:     opts,
	}
}

// Schema returns the field catalogue for version, or for the default version
// when version is empty.
func (s *ValidationService) Schema(ctx context.Context, version string) (*schema.Schema, error) {
	version = s.version(version)

	sch, err := s.schemas.Schema(ctx, version)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve schema",
			slog.String("operation", "Schema"),
			slog.String("schema_version", version),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("resolving schema %s: %w", version, err)
	}
	return sch, nil
}

// Validate runs the validation pipeline over req.Content. Problems with the
// workbook are reported in the returned Log; an error is returned only when
// the schema cannot be resolved or ctx is canceled.
func (s *ValidationService) Validate(ctx context.Context, req ports.ValidationRequest) (*report.Log, error) {
	start := time.Now()
	version := s.version(req.Version)

	sch, err := s.Schema(ctx, version)
	if err != nil {
		s.record(ctx, version, OutcomeError, nil, start)
		return nil, err
	}

	log := report.New(req.Name)
	logger := s.logger.With(
		slog.String("workbook", req.Name),
		slog.String("schema_version", version),
		slog.String("run_id", log.RunID()),
	)
	logger.InfoContext(ctx, "validating workbook", slog.Int("bytes", len(req.Content)))

	if err := s.run(ctx, logger, log, sch, req); err != nil {
		logger.ErrorContext(ctx, "validation aborted",
			slog.String("operation", "Validate"),
			slog.Any("error", err),
		)
		s.record(ctx, version, OutcomeError, nil, start)
		return nil, err
	}

	outcome := OutcomeValid
	if log.HasErrors() {
		outcome = OutcomeInvalid
	}
	s.record(ctx, version, outcome, log.CountByKind(), start)
	logger.InfoContext(ctx, "workbook validated",
		slog.String("result", outcome),
		slog.Int("errors", log.Len()),
		slog.Duration("elapsed", time.Since(start)),
	)
	return log, nil
}

func (s *ValidationService) run(ctx context.Context, logger *slog.Logger, log *report.Log, sch *schema.Schema, req ports.ValidationRequest) error {
	wb, err := s.opener.Open(ctx, req.Content)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		logger.DebugContext(ctx, "workbook container rejected", slog.Any("error", err))
		log.Add(report.Error{
			Message: fmt.Sprintf("The provided file %s is not a valid xlsx excel file", req.Name),
			Subject: ContainerSubject,
			Kind:    report.KindContainer,
		})
		return nil
	}

	logger.DebugContext(ctx, "validating structure")
	structural := slices.Collect(validate.Structure(wb, sch.Layout()))
	if len(structural) > 0 {
		logger.DebugContext(ctx, "adding errors", slog.String("pass", "structure"), slog.Int("count", len(structural)))
		log.AddAll(slices.Values(structural))
		return nil
	}

	passes := []fanout.Task[[]report.Error]{
		s.contentPass(logger, wb, sch),
		s.entityPass(logger, req.Content, sch.Version()),
	}

	var results []fanout.Result[[]report.Error]
	if s.opts.ParallelPasses {
		results = fanout.Run(ctx, len(passes), passes...)
	} else {
		results = fanout.Sequential(ctx, passes...)
	}

	findings, err := fanout.Values(results)
	if err != nil {
		return err
	}
	for i, errs := range findings {
		logger.DebugContext(ctx, "adding errors", slog.String("pass", passNames[i]), slog.Int("count", len(errs)))
		log.AddAll(slices.Values(errs))
	}
	return nil
}

func (s *ValidationService) contentPass(logger *slog.Logger, wb workbook.Workbook, sch *schema.Schema) fanout.Task[[]report.Error] {
	return func(ctx context.Context) ([]report.Error, error) {
		logger.DebugContext(ctx, "validating content")
		opts := validate.ContentOptions{CheckTypes: s.opts.CheckTypes}
		return slices.Collect(validate.Content(wb, sch, opts)), nil
	}
}

func (s *ValidationService) entityPass(logger *slog.Logger, content []byte, version string) fanout.Task[[]report.Error] {
	return func(ctx context.Context) ([]report.Error, error) {
		logger.DebugContext(ctx, "validating entities")
		errs := slices.Collect(validate.Entities(ctx, s.parser, content, version))
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return errs, nil
	}
}

func (s *ValidationService) version(v string) string {
	if v == "" {
		return s.opts.DefaultVersion
	}
	return v
}

func (s *ValidationService) record(ctx context.Context, version, outcome string, counts map[report.Kind]int, start time.Time) {
	if s.recorder == nil {
		return
	}
	findings := make(map[string]int, len(counts))
	for kind, n := range counts {
		findings[kind.String()] = n
	}
	s.recorder.RecordValidation(ctx, version, outcome, findings, time.Since(start))
}
