package processservice

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/rohit/delimfmt/internal/config"
	"github.com/rohit/delimfmt/internal/diag"
	"github.com/rohit/delimfmt/internal/domain/errors"
	"github.com/rohit/delimfmt/internal/domain/models"
	"github.com/rohit/delimfmt/internal/metrics"
	"github.com/rohit/delimfmt/internal/service/process/parsers"
	"github.com/rohit/delimfmt/pkg/logger"
	"github.com/rs/zerolog"
)

// ErrRunInProgress is returned by TryProcessFiles when another run holds the service
var ErrRunInProgress = stderrors.New("another run is in progress")

// Service dispatches input files to the delimiter variant matching their
// extension, one file at a time
type Service struct {
	metrics *metrics.Collector
	logger  zerolog.Logger
	config  config.ProcessConfig
	mu      sync.Mutex
}

// NewService creates a new processing service
func NewService(
	metrics *metrics.Collector,
	logger zerolog.Logger,
	cfg config.ProcessConfig,
) *Service {
	return &Service{
		metrics: metrics,
		logger:  logger,
		config:  cfg,
	}
}

// ProcessFiles processes filePaths in order, reporting every diagnostic to
// reporter. Missing files, unsupported extensions and malformed lines never
// stop the run. An *errors.IOError or a cancelled context does; the summary
// returned alongside it covers the files handled so far.
func (s *Service) ProcessFiles(ctx context.Context, filePaths []string, reporter diag.Reporter) (*models.RunSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.run(ctx, filePaths, reporter)
}

// TryProcessFiles is ProcessFiles but fails with ErrRunInProgress instead of
// waiting for a run already in progress
func (s *Service) TryProcessFiles(ctx context.Context, filePaths []string, reporter diag.Reporter) (*models.RunSummary, error) {
	if !s.mu.TryLock() {
		return nil, ErrRunInProgress
	}
	defer s.mu.Unlock()
	return s.run(ctx, filePaths, reporter)
}

func (s *Service) run(ctx context.Context, filePaths []string, reporter diag.Reporter) (*models.RunSummary, error) {
	summary := models.NewRunSummary()
	log := logger.WithRunID(s.logger, summary.RunID.String())

	recorder := diag.NewRecorder()
	reporter = diag.Multi(reporter, recorder, logReporter{log: log})

	log.Info().Int("files", len(filePaths)).Msg("Starting run")
	startTime := time.Now()
	if s.metrics != nil {
		s.metrics.RecordRunStarted()
	}

	runErr := s.processAll(ctx, filePaths, reporter, summary, log)

	duration := time.Since(startTime).Seconds()
	if s.metrics != nil {
		s.metrics.RecordRunCompleted(duration)
	}
	summary.Diagnostics = recorder.Messages()
	summary.Complete()

	if runErr != nil {
		log.Error().Err(runErr).
			Float64("duration_seconds", duration).
			Int("files_handled", len(summary.Files)).
			Msg("Run aborted")
		return summary, runErr
	}

	log.Info().
		Float64("duration_seconds", duration).
		Int("processed", summary.CountStatus(models.FileStatusProcessed)).
		Int("not_found", summary.CountStatus(models.FileStatusNotFound)).
		Int("unsupported", summary.CountStatus(models.FileStatusUnsupported)).
		Int("lines_written", summary.TotalWritten()).
		Int("lines_invalid", summary.TotalInvalid()).
		Msg("Run completed")

	return summary, nil
}

func (s *Service) processAll(ctx context.Context, filePaths []string, reporter diag.Reporter, summary *models.RunSummary, log zerolog.Logger) error {
	for _, filePath := range filePaths {
		if err := ctx.Err(); err != nil {
			return err
		}

		result, err := s.processFile(ctx, filePath, reporter, logger.WithFile(log, filePath))
		summary.Files = append(summary.Files, result)
		if s.metrics != nil {
			s.metrics.RecordFile(result.Format, string(result.Status))
			s.metrics.RecordLines(result.Format, result.LinesWritten, result.InvalidLines)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) processFile(ctx context.Context, filePath string, reporter diag.Reporter, log zerolog.Logger) (models.FileResult, error) {
	if !parsers.FileExists(filePath) {
		reporter.Report(diag.FileNotFound(filePath))
		return models.FileResult{Path: filePath, Status: models.FileStatusNotFound}, nil
	}

	variant, ok := parsers.VariantFor(parsers.DetectFormat(filePath))
	if !ok {
		reporter.Report(diag.UnsupportedFileType(parsers.Extension(filePath)))
		return models.FileResult{Path: filePath, Status: models.FileStatusUnsupported}, nil
	}

	log.Debug().
		Str("format", string(variant.Format)).
		Str("delimiter", variant.Delimiter).
		Int("min_fields", variant.MinFields).
		Msg("Parsing file")

	parser := parsers.NewDelimitedParser(variant, reporter, s.config.OutputDir)
	result, err := parser.ParseFile(ctx, filePath)
	if err != nil {
		if errors.IsIOError(err) {
			log.Error().Err(err).Int("line", result.LinesRead).Msg("I/O failure while processing file")
		}
		return result, err
	}

	log.Debug().
		Str("output", result.OutputPath).
		Int("lines_read", result.LinesRead).
		Int("lines_written", result.LinesWritten).
		Int("lines_invalid", result.InvalidLines).
		Msg("File processed")

	return result, nil
}

// logReporter mirrors diagnostics into the structured log
type logReporter struct {
	log zerolog.Logger
}

func (r logReporter) Report(msg string) {
	r.log.Debug().Str("diagnostic", msg).Msg("Diagnostic")
}
