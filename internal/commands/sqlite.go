package commands

import (
	"fmt"

	"github.com/klabast/wb-services/holiday-csv/internal/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newExportSQLiteCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "export-sqlite",
		Short: "Replace the holiday_day table of a SQLite database with the expanded rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Build(opts.cfg.SourceFile, opts.logger)
			if err != nil {
				return err
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

			stored, err := store.ReplaceAll(cmd.Context(), res.Rows)
			if err != nil {
				return err
			}

			opts.logger.Info("Exported holidays",
				zap.String("database", opts.cfg.DatabaseFile),
				zap.Int("rows", len(res.Rows)),
				zap.Int("stored", stored))
			fmt.Fprintln(cmd.OutOrStdout(), app.StatusLine(stored, opts.cfg.DatabaseFile))
			return nil
		},
	}
}
