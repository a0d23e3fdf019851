package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "primer.dev/pkg/primer/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	topicStyle = lipgloss.NewStyle().Faint(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)

	stableStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	unstableStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	failedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start initializes the UI.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var config StartConfig
	for _, option := range options {
		option(&config)
	}

	slog.Debug("tui started", "mode", config.mode)

	return nil
}

// Close finalizes the UI.
func (p *TUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayLessonList prints a styled, non-interactive lesson list.
func (p *TUI) DisplayLessonList(ctx context.Context, infos []m.Info) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, info := range infos {
		_, err := fmt.Fprintf(p.output, "%s  %s  %s\n",
			titleStyle.Render(string(info.Name)),
			topicStyle.Render(info.Topic),
			helpStyle.Render(fmt.Sprintf("%d lines", info.Lines)),
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// DisplayTranscript prints one transcript under a styled header.
func (p *TUI) DisplayTranscript(ctx context.Context, info m.Info, transcript m.Transcript) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	header := titleStyle.Render(string(info.Name)) + " " + topicStyle.Render(info.Topic)

	_, err := fmt.Fprintf(p.output, "%s\n%s\n", header, transcript.Output)

	return err
}

// DisplayCheckReports prints one colored verdict line per lesson.
func (p *TUI) DisplayCheckReports(ctx context.Context, reports []m.CheckReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, report := range reports {
		line := fmt.Sprintf("%s  %s", verdictLabel(report.Verdict), report.Lesson)
		if report.Detail != "" {
			line += "  " + helpStyle.Render(report.Detail)
		}

		if _, err := fmt.Fprintln(p.output, line); err != nil {
			return err
		}
	}

	return nil
}

func verdictLabel(verdict m.Verdict) string {
	switch verdict {
	case m.Stable:
		return stableStyle.Render(verdict.String())
	case m.Unstable:
		return unstableStyle.Render(verdict.String())
	case m.Failed:
		return failedStyle.Render(verdict.String())
	}

	return verdict.String()
}

// Browse opens the interactive lesson browser: a list of lessons whose
// transcripts open in a pager on enter.
func (p *TUI) Browse(ctx context.Context, infos []m.Info, transcripts map[m.Name]m.Transcript) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newBrowseModel(infos, transcripts)

	program := tea.NewProgram(model, tea.WithOutput(p.output))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("lesson browser: %w", err)
	}

	return nil
}

// browseItem adapts a lesson to the bubbles list.
type browseItem struct {
	info       m.Info
	transcript m.Transcript
}

func (i browseItem) Title() string       { return string(i.info.Name) }
func (i browseItem) Description() string { return i.info.Summary }
func (i browseItem) FilterValue() string { return string(i.info.Name) }

// browseModel is the Bubble Tea model for the lesson browser.
type browseModel struct {
	lessons  list.Model
	view     viewport.Model
	selected m.Info
	showing  bool
	quitting bool
}

func newBrowseModel(infos []m.Info, transcripts map[m.Name]m.Transcript) browseModel {
	items := make([]list.Item, 0, len(infos))
	for _, info := range infos {
		items = append(items, browseItem{info: info, transcript: transcripts[info.Name]})
	}

	lessons := list.New(items, list.NewDefaultDelegate(), 0, 0)
	lessons.Title = "primer lessons"
	lessons.SetShowStatusBar(false)

	return browseModel{
		lessons: lessons,
		view:    viewport.New(80, 20),
	}
}

// Init implements tea.Model.
func (bm browseModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (bm browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		bm.lessons.SetSize(msg.Width, msg.Height-2)
		bm.view.Width = msg.Width
		bm.view.Height = msg.Height - 4

		return bm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			bm.quitting = true
			return bm, tea.Quit

		case "enter":
			if !bm.showing {
				if item, ok := bm.lessons.SelectedItem().(browseItem); ok {
					bm.selected = item.info
					bm.view.SetContent(item.transcript.Output)
					bm.showing = true
				}

				return bm, nil
			}

		case "esc":
			if bm.showing {
				bm.showing = false
				return bm, nil
			}
		}
	}

	var cmd tea.Cmd

	if bm.showing {
		bm.view, cmd = bm.view.Update(msg)
	} else {
		bm.lessons, cmd = bm.lessons.Update(msg)
	}

	return bm, cmd
}

// View implements tea.Model.
func (bm browseModel) View() string {
	if bm.quitting {
		return ""
	}

	if bm.showing {
		header := titleStyle.Render(string(bm.selected.Name)) + " " + topicStyle.Render(bm.selected.Topic)

		return fmt.Sprintf("%s\n%s\n%s",
			header,
			bm.view.View(),
			helpStyle.Render("esc back • q quit"),
		)
	}

	return bm.lessons.View()
}
