package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	m "primer.dev/pkg/primer/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View a previously saved check report",
		Long:  "View the check report saved in the output directory by a previous check run.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()

			dir := m.Path(viper.GetString(outputFlagName))

			reports, err := reportStore.LoadCheckReports(dir)
			if err != nil {
				return err
			}

			return activeUI(cmd).DisplayCheckReports(ctx, reports)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
