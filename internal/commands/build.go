package commands

import (
	"fmt"

	"github.com/klabast/wb-services/holiday-csv/internal/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBuildCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Write the holiday CSV (same as running without a command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts)
		},
	}
}

func runBuild(cmd *cobra.Command, opts *options) error {
	res, err := app.Run(opts.cfg, opts.logger)
	if err != nil {
		return err
	}

	counts := app.CountByPeriod(res.Rows)
	for _, period := range app.Periods() {
		if n := counts[period]; n > 0 {
			opts.logger.Debug("Period count", zap.String("period", string(period)), zap.Int("rows", n))
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), app.StatusLine(len(res.Rows), opts.cfg.OutputFile))
	return nil
}
