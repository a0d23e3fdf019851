package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"primer.dev/pkg/primer/internal/lesson"
	m "primer.dev/pkg/primer/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List lessons and their transcript sizes",
		Long:  "List the bundled lessons with their topics and transcript line counts.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()

			infos := make([]m.Info, 0, len(lesson.All()))
			for _, l := range lesson.All() {
				infos = append(infos, l.Info)
			}

			return activeUI(cmd).DisplayLessonList(ctx, infos)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
