package commands

import (
	"fmt"

	"github.com/klabast/wb-services/holiday-csv/internal/app"
	"github.com/spf13/cobra"
)

func newVerifyCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that the CSV on disk matches a fresh build byte for byte",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Verify(opts.cfg, opts.logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date (%d holidays, blake2b %s)\n",
				opts.cfg.OutputFile, len(res.Rows), res.Digest)
			return nil
		},
	}
}
