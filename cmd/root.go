// Package cmd provides the root command and CLI setup for primer.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"primer.dev/pkg/primer/internal/adapter"
	"primer.dev/pkg/primer/internal/controller"
	"primer.dev/pkg/primer/internal/lesson"
	m "primer.dev/pkg/primer/internal/model"
)

var runner lesson.Runner
var reportStore adapter.ReportStore

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// plainFlag forces non-interactive output even on a terminal.
var plainFlag bool

// verboseFlag raises the log level to debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	runner = lesson.NewRunner()
	reportStore = adapter.NewReportStore()
}

const lessonNamesHelp = `Lesson names:
  - control-flow   labeled loops and a factorial accumulator
  - data-types     float widths, precision loss, explicit coercion
  - variables      mutability, constants and shadowing`

const rootLongDescription = `Primer replays bite-size Go language-mechanics lessons. Each lesson is a
deterministic program whose whole behavior is the transcript it prints.

` + lessonNamesHelp

const runLongDescription = `Replay the named lessons (default: all of them, in registry order).

` + lessonNamesHelp

const checkLongDescription = `Replay every selected lesson several times and verify the transcripts are
byte-identical with the expected line counts.

` + lessonNamesHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "primer",
		Short: "Go language-mechanics lesson runner",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), verboseFlag || viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for check reports and saved transcripts",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVar(&plainFlag, plainFlagName, viper.GetBool(plainFlagName), "force plain output (no interactive browser)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(plainFlagName), plainFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// activeUI picks the UI for a command invocation: interactive on a
// terminal unless --plain is set.
func activeUI(cmd *cobra.Command) controller.UI {
	interactive := controller.IsTTY(os.Stdout) && !viper.GetBool(plainFlagName)
	return controller.NewUI(cmd, interactive)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parseNames(args []string) []m.Name {
	names := make([]m.Name, 0, len(args))
	for _, arg := range args {
		names = append(names, m.Name(arg))
	}

	return names
}
