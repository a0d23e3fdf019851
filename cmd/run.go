package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"primer.dev/pkg/primer/internal/controller"
	"primer.dev/pkg/primer/internal/lesson"
	m "primer.dev/pkg/primer/internal/model"
)

var runSaveFlag bool
var runFullFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [lessons...]",
		Short: "Replay lessons",
		Long:  runLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLessons(cmd, parseNames(args))
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&runSaveFlag, saveFlagName, "s", viper.GetBool(runSaveConfigKey), "also save each transcript to the output directory")
	bindFlagToConfig(cmd.Flags().Lookup(saveFlagName), runSaveConfigKey)

	cmd.Flags().BoolVar(&runFullFlag, fullFlagName, viper.GetBool(runFullConfigKey), "include extended walks the default transcripts leave out")
	bindFlagToConfig(cmd.Flags().Lookup(fullFlagName), runFullConfigKey)
}

func runLessons(cmd *cobra.Command, names []m.Name) error {
	ctx := context.Background()

	selected, err := lesson.Select(names)
	if err != nil {
		return err
	}

	var options []lesson.ReplayOption
	if viper.GetBool(runFullConfigKey) {
		options = append(options, lesson.WithExtras())
	}

	infos := make([]m.Info, 0, len(selected))
	transcripts := make(map[m.Name]m.Transcript, len(selected))

	for _, l := range selected {
		transcript, err := runner.Replay(ctx, l.Info.Name, options...)
		if err != nil {
			return err
		}

		infos = append(infos, l.Info)
		transcripts[l.Info.Name] = transcript

		if viper.GetBool(runSaveConfigKey) {
			dir := m.Path(viper.GetString(outputFlagName))
			if err := reportStore.SaveTranscript(dir, transcript); err != nil {
				return err
			}
		}
	}

	ui := activeUI(cmd)
	if err := ui.Start(ctx, controller.WithRunMode()); err != nil {
		return err
	}
	defer ui.Close(ctx)

	return ui.Browse(ctx, infos, transcripts)
}
