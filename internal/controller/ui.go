// Package controller provides output front-ends for displaying lessons.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "primer.dev/pkg/primer/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRun StartMode = iota
	ModeCheck
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithRunMode sets the UI to lesson replay mode.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// WithCheckMode sets the UI to determinism check mode.
func WithCheckMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCheck
	}
}

// UI defines the interface for displaying lessons and check results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayLessonList(ctx context.Context, infos []m.Info) error
	DisplayTranscript(ctx context.Context, info m.Info, transcript m.Transcript) error
	DisplayCheckReports(ctx context.Context, reports []m.CheckReport) error
	Browse(ctx context.Context, infos []m.Info, transcripts map[m.Name]m.Transcript) error
}

// NewUI selects the UI implementation: interactive terminals get the
// bubbletea browser, everything else the plain printer.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether the file is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
