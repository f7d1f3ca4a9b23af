package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/klabast/wb-services/holiday-csv/internal/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newLookupCommand(opts *options) *cobra.Command {
	var fromDB bool

	cmd := &cobra.Command{
		Use:   "lookup <YYYY-MM-DD>...",
		Short: "Print the holidays on the given dates from the written CSV",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days := make([]time.Time, 0, len(args))
			for _, arg := range args {
				day, err := app.ParseISODate(arg)
				if err != nil {
					return err
				}
				days = append(days, day)
			}

			if fromDB {
				return lookupDatabase(cmd, opts, days)
			}
			return lookupCSV(cmd, opts, days)
		},
	}

	cmd.Flags().BoolVar(&fromDB, "from-db", false, "read from the export-sqlite database instead of the CSV")
	return cmd
}

func lookupCSV(cmd *cobra.Command, opts *options, days []time.Time) error {
	file, err := os.Open(opts.cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to open %s (run build first): %w", opts.cfg.OutputFile, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			opts.logger.Warn("Error closing CSV", zap.Error(err))
		}
	}()

	records, err := app.ReadCSV(file)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, day := range days {
		matches := app.RecordsOn(records, day)
		if len(matches) == 0 {
			printNoHoliday(out, day)
			continue
		}
		for _, r := range matches {
			fmt.Fprintf(out, "%s\t%s\t%s\n", r.Date, r.Period, r.Name)
		}
	}
	return nil
}

func lookupDatabase(cmd *cobra.Command, opts *options, days []time.Time) error {
	if _, err := os.Stat(opts.cfg.DatabaseFile); err != nil {
		return fmt.Errorf("failed to open %s (run export-sqlite first): %w", opts.cfg.DatabaseFile, err)
	}

	store, err := app.OpenSQLite(opts.cfg.DatabaseFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			opts.logger.Warn("Error closing database", zap.Error(err))
		}
	}()

	out := cmd.OutOrStdout()
	for _, day := range days {
		rows, err := store.ListByDate(cmd.Context(), day)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			printNoHoliday(out, day)
			continue
		}
		for _, r := range rows {
			fmt.Fprintf(out, "%s\t%s\t%s\n", r.Date.Format(app.OutputDateLayout), r.Period, r.Name)
		}
	}
	return nil
}

func printNoHoliday(out io.Writer, day time.Time) {
	fmt.Fprintf(out, "%s\t-\n", day.Format(app.OutputDateLayout))
}
