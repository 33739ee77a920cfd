// Package cli wires configuration, logging, metrics and the processing
// service behind the delimfmt command line.
package cli

import (
	"io"
	"os"

	"github.com/rohit/delimfmt/internal/config"
	"github.com/rohit/delimfmt/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// options holds flag values shared by the subcommands
type options struct {
	outputDir   string
	metricsFile string
	port        int
	logLevel    string

	// logger is set once a command has loaded its configuration
	logger *zerolog.Logger
}

// Execute runs the command tree with the given arguments and returns the
// process exit code. A failure is logged through the logger the command
// configured, or one built from the environment when it failed earlier.
func Execute(args []string, stdout, stderr io.Writer) int {
	opts := &options{}
	cmd := newRootCommand(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		log := opts.logger
		if log == nil {
			fallback := logger.NewWithWriter(stderr, os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))
			log = &fallback
		}
		log.WithLevel(zerolog.FatalLevel).Err(err).Msg("delimfmt failed")
		return 1
	}
	return 0
}

// NewRootCommand builds the command tree. Diagnostics go to the command's
// stdout, structured logs to its stderr.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&options{})
}

func newRootCommand(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "delimfmt [paths...]",
		Short: "Reformat comma- and pipe-delimited files into readable text",
		Long: `delimfmt reads .csv (comma, at least 6 fields) and .txt (pipe, at least 7
fields) files line by line and appends a formatted line for every valid record
to <name>_out.txt next to the input.

Without arguments the paths come from DELIMFMT_FILES, defaulting to
SampleCSV.csv and SamplePipe.txt. Running bare is the same as "delimfmt run".`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFiles(cmd, opts, args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.outputDir, "output-dir", "", "write every output file to this directory (overrides DELIMFMT_OUTPUT_DIR)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides LOG_LEVEL)")

	rootCmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "write run metrics in Prometheus text format to this file (overrides METRICS_TEXTFILE)")

	rootCmd.AddCommand(newRunCommand(opts))
	rootCmd.AddCommand(newServeCommand(opts))

	return rootCmd
}

// loadConfig reads the environment, applies flag overrides and creates the
// output directory override
func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if opts.outputDir != "" {
		cfg.Process.OutputDir = opts.outputDir
	}
	if opts.metricsFile != "" {
		cfg.Prometheus.Textfile = opts.metricsFile
	}
	if opts.port != 0 {
		cfg.App.Port = opts.port
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}

	if err := cfg.EnsureOutputDir(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the command's logger and keeps it for Execute
func newLogger(opts *options, cfg *config.Config, out io.Writer) zerolog.Logger {
	log := logger.NewWithWriter(out, cfg.App.Env, cfg.Log.Level).
		With().
		Str("app", cfg.App.Name).
		Logger()
	opts.logger = &log
	return log
}
