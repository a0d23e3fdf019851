package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"primer.dev/pkg/primer/internal/controller"
	"primer.dev/pkg/primer/internal/lesson"
	m "primer.dev/pkg/primer/internal/model"
)

// ErrCheckFailed is returned when any lesson's check verdict is not stable.
var ErrCheckFailed = errors.New("determinism check failed")

var checkParallelFlag int
var checkRunsFlag int

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [lessons...]",
		Short: "Check lessons for deterministic transcripts",
		Long:  checkLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkLessons(cmd, parseNames(args))
		},
	}

	configureCheckFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func configureCheckFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&checkParallelFlag, checkParallelFlagName, "p", viper.GetInt(checkParallelConfigKey), "number of parallel workers for lesson checks")
	bindFlagToConfig(cmd.Flags().Lookup(checkParallelFlagName), checkParallelConfigKey)

	cmd.Flags().IntVar(&checkRunsFlag, runsFlagName, viper.GetInt(checkRunsConfigKey), "replays to compare per lesson")
	bindFlagToConfig(cmd.Flags().Lookup(runsFlagName), checkRunsConfigKey)
}

func checkLessons(cmd *cobra.Command, names []m.Name) error {
	ctx := context.Background()

	reports, err := runner.Check(ctx, lesson.CheckArgs{
		Names:   names,
		Runs:    viper.GetInt(checkRunsConfigKey),
		Threads: viper.GetInt(checkParallelConfigKey),
	})
	if err != nil {
		return err
	}

	dir := m.Path(viper.GetString(outputFlagName))
	if err := reportStore.SaveCheckReports(dir, reports); err != nil {
		return err
	}

	ui := activeUI(cmd)
	if err := ui.Start(ctx, controller.WithCheckMode()); err != nil {
		return err
	}
	defer ui.Close(ctx)

	if err := ui.DisplayCheckReports(ctx, reports); err != nil {
		return err
	}

	if !m.AllStable(reports) {
		return ErrCheckFailed
	}

	return nil
}
