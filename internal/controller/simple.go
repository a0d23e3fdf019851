package controller

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "primer.dev/pkg/primer/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var config StartConfig
	for _, option := range options {
		option(&config)
	}

	slog.Debug("simple ui started", "mode", config.mode)

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayLessonList prints the lesson table.
func (s *SimpleUI) DisplayLessonList(ctx context.Context, infos []m.Info) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderLessonTable(infos))

	return nil
}

func renderLessonTable(infos []m.Info) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Lesson", "Topic", "Lines"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
	})

	totalLines := 0

	for _, info := range infos {
		table.Append([]string{string(info.Name), info.Topic, fmt.Sprintf("%d", info.Lines)})

		totalLines += info.Lines
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Lessons %d", len(infos)),
		"",
		fmt.Sprintf("%d", totalLines),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayTranscript prints one lesson's transcript under a short header.
func (s *SimpleUI) DisplayTranscript(ctx context.Context, info m.Info, transcript m.Transcript) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("--- %s (%s)\n", info.Name, info.Topic)
	s.printf("%s\n", transcript.Output)

	return nil
}

// DisplayCheckReports prints the verdict table plus details for anything
// that is not stable.
func (s *SimpleUI) DisplayCheckReports(ctx context.Context, reports []m.CheckReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Lesson", "Verdict", "Runs", "Lines", "SHA256"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, report := range reports {
		table.Append([]string{
			string(report.Lesson),
			report.Verdict.String(),
			fmt.Sprintf("%d", report.Runs),
			fmt.Sprintf("%d", report.Lines),
			shortHash(report.Hash),
		})
	}

	table.Render()

	s.printf("\n%s", tableBuffer.String())

	for _, report := range reports {
		if report.Verdict != m.Stable && report.Detail != "" {
			s.printf("%s: %s\n", report.Lesson, report.Detail)
		}
	}

	return nil
}

// Browse prints every transcript in order (no interactivity in simple mode).
func (s *SimpleUI) Browse(ctx context.Context, infos []m.Info, transcripts map[m.Name]m.Transcript) error {
	for _, info := range infos {
		if err := s.DisplayTranscript(ctx, info, transcripts[info.Name]); err != nil {
			return err
		}
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}

	return hash
}
