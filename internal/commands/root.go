package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/klabast/wb-services/holiday-csv/internal/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// options are the persistent flags shared by every command
type options struct {
	configFile string
	source     string
	output     string
	database   string
	verbose    bool

	cfg    app.Config
	logger *zap.Logger
}

// Execute runs holiday-csv with the process arguments
func Execute(ctx context.Context) error {
	return execute(ctx, &options{}, os.Args[1:])
}

// execute runs the command tree and flushes the logger on every exit path.
// cobra skips PersistentPostRun when a command fails.
func execute(ctx context.Context, opts *options, args []string) error {
	root := newRootCommand(opts)
	root.SetArgs(args)
	defer func() {
		if opts.logger != nil {
			_ = opts.logger.Sync()
		}
	}()
	return root.ExecuteContext(ctx)
}

// newRootCommand builds the holiday-csv command tree.
// Without a subcommand it behaves like build.
func newRootCommand(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "holiday-csv",
		Short: "Expand a public holiday calendar into one CSV row per day",
		Long: `holiday-csv reads a calendar JSON document of public holidays, expands
every multi-day event into one row per day, tags each holiday with a period
and writes the rows sorted by date, name and period as CSV.

Run without arguments to build ` + app.DefaultOutputFile + ` from ` + app.DefaultSourceFile + `.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "YAML config file")
	flags.StringVar(&opts.source, "source", "", "source JSON document (default "+app.DefaultSourceFile+")")
	flags.StringVar(&opts.output, "output", "", "CSV output file (default "+app.DefaultOutputFile+")")
	flags.StringVar(&opts.database, "db", "", "SQLite database for export-sqlite (default "+app.DefaultDatabaseFile+")")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newBuildCommand(opts),
		newClassifyCommand(),
		newVerifyCommand(opts),
		newLookupCommand(opts),
		newExportSQLiteCommand(opts),
	)
	return root
}

// resolve builds the config (defaults, then file, then flags) and the logger.
// A logger set beforehand, e.g. by tests, is kept.
func (o *options) resolve() error {
	cfg, err := app.LoadConfig(o.configFile)
	if err != nil {
		return err
	}
	if o.source != "" {
		cfg.SourceFile = o.source
	}
	if o.output != "" {
		cfg.OutputFile = o.output
	}
	if o.database != "" {
		cfg.DatabaseFile = o.database
	}
	if o.verbose {
		cfg.Verbose = true
	}
	o.cfg = cfg

	if o.logger == nil {
		o.logger, err = newLogger(cfg.Verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
	}
	return nil
}
