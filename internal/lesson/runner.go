package lesson

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	m "primer.dev/pkg/primer/internal/model"
)

// defaultCheckRuns is how many replays a determinism check compares.
const defaultCheckRuns = 2

// ReplayOption is a functional option for Replay.
type ReplayOption func(*replayConfig)

type replayConfig struct {
	extras bool
}

// WithExtras appends a lesson's extended walk to its transcript.
func WithExtras() ReplayOption {
	return func(c *replayConfig) {
		c.extras = true
	}
}

// CheckArgs configures a determinism check.
type CheckArgs struct {
	Names   []m.Name
	Runs    int
	Threads int
}

// Runner replays lessons and checks their transcripts.
type Runner interface {
	Replay(ctx context.Context, name m.Name, options ...ReplayOption) (m.Transcript, error)
	Check(ctx context.Context, args CheckArgs) ([]m.CheckReport, error)
}

type runner struct{}

// NewRunner creates a Runner over the bundled registry.
func NewRunner() Runner {
	return &runner{}
}

// Replay runs one lesson against an in-memory buffer and returns the
// captured transcript.
func (r *runner) Replay(ctx context.Context, name m.Name, options ...ReplayOption) (m.Transcript, error) {
	if err := ctx.Err(); err != nil {
		return m.Transcript{}, err
	}

	var config replayConfig
	for _, option := range options {
		option(&config)
	}

	l, err := Lookup(name)
	if err != nil {
		return m.Transcript{}, err
	}

	var buf bytes.Buffer

	if err := l.Run(&buf); err != nil {
		return m.Transcript{}, fmt.Errorf("replay %s: %w", name, err)
	}

	if config.extras && l.Extra != nil {
		if err := l.Extra(&buf); err != nil {
			return m.Transcript{}, fmt.Errorf("replay %s extras: %w", name, err)
		}
	}

	slog.Debug("replayed lesson", "lesson", name, "bytes", buf.Len())

	return m.Transcript{Lesson: name, Output: buf.String()}, nil
}

// Check replays every selected lesson several times and verifies that each
// replay produced the same transcript with the expected line count.
func (r *runner) Check(ctx context.Context, args CheckArgs) ([]m.CheckReport, error) {
	lessons, err := Select(args.Names)
	if err != nil {
		return nil, err
	}

	runs := args.Runs
	if runs < defaultCheckRuns {
		runs = defaultCheckRuns
	}

	threads := args.Threads
	if threads < 1 {
		threads = 1
	}

	reports := make([]m.CheckReport, len(lessons))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, l := range lessons {
		group.Go(func() error {
			reports[i] = r.checkLesson(groupCtx, l, runs)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

func (r *runner) checkLesson(ctx context.Context, l Lesson, runs int) m.CheckReport {
	report := m.CheckReport{Lesson: l.Info.Name, Runs: runs}

	first, err := r.Replay(ctx, l.Info.Name)
	if err != nil {
		report.Verdict = m.Failed
		report.Detail = err.Error()

		return report
	}

	report.Lines = len(first.Lines())
	report.Hash = hashTranscript(first)

	for run := 1; run < runs; run++ {
		next, err := r.Replay(ctx, l.Info.Name)
		if err != nil {
			report.Verdict = m.Failed
			report.Detail = err.Error()

			return report
		}

		if next.Output != first.Output {
			report.Verdict = m.Unstable
			report.Detail = fmt.Sprintf("run %d diverged from run 1", run+1)

			return report
		}
	}

	if l.Info.Lines != 0 && report.Lines != l.Info.Lines {
		report.Verdict = m.Failed
		report.Detail = fmt.Sprintf("expected %d lines, got %d", l.Info.Lines, report.Lines)

		return report
	}

	report.Verdict = m.Stable

	return report
}

func hashTranscript(t m.Transcript) string {
	sum := sha256.Sum256([]byte(t.Output))
	return hex.EncodeToString(sum[:])
}
