package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rohit/delimfmt/internal/diag"
	"github.com/rohit/delimfmt/internal/metrics"
	processservice "github.com/rohit/delimfmt/internal/service/process"
	"github.com/spf13/cobra"
)

func newRunCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Process the given files once and exit",
		Long: `Processes each path in order. Missing files, unsupported extensions and
malformed lines are reported on stdout and do not stop the run. An I/O error
reading an input or writing an output aborts the run with exit status 1.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFiles(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "write run metrics in Prometheus text format to this file (overrides METRICS_TEXTFILE)")

	return cmd
}

func runFiles(cmd *cobra.Command, opts *options, args []string) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	log := newLogger(opts, cfg, cmd.ErrOrStderr())

	files := cfg.Process.Files
	if len(args) > 0 {
		files = args
	}

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	collector := metrics.NewCollector()
	svc := processservice.NewService(collector, log, cfg.Process)

	_, runErr := svc.ProcessFiles(ctx, files, diag.NewWriterReporter(cmd.OutOrStdout()))

	if cfg.Prometheus.Textfile != "" {
		if err := collector.WriteTextfile(cfg.Prometheus.Textfile); err != nil {
			log.Error().Err(err).Str("path", cfg.Prometheus.Textfile).Msg("Failed to write metrics textfile")
		}
	}

	return runErr
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
