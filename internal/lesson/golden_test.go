package lesson

import (
	"context"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	m "primer.dev/pkg/primer/internal/model"
)

// TestTranscriptGoldens pins every lesson's transcript byte-for-byte,
// including the deliberate misspellings in the variables lesson.
func TestTranscriptGoldens(t *testing.T) {
	runner := NewRunner()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, l := range All() {
		t.Run(string(l.Info.Name), func(t *testing.T) {
			transcript, err := runner.Replay(context.Background(), l.Info.Name)
			require.NoError(t, err)

			g.Assert(t, string(l.Info.Name), []byte(transcript.Output))
		})
	}
}

func TestTranscriptGoldens_Extended(t *testing.T) {
	runner := NewRunner()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	transcript, err := runner.Replay(context.Background(), m.LessonVariables, WithExtras())
	require.NoError(t, err)

	g.Assert(t, "variables-extended", []byte(transcript.Output))
}
