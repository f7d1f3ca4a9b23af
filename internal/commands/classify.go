package commands

import (
	"fmt"

	"github.com/klabast/wb-services/holiday-csv/internal/app"
	"github.com/spf13/cobra"
)

func newClassifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <summary>...",
		Short: "Print the period tag for each holiday summary",
		Example: `  holiday-csv classify "The second day of Chinese New Year" "Christmas Day"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, summary := range args {
				fmt.Fprintf(out, "%s\t%s\n", app.Classify(summary), summary)
			}
			return nil
		},
	}
}
