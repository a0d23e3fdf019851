package lesson

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "primer.dev/pkg/primer/internal/model"
)

func TestRunVariables(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runVariables(&buf))

	transcript := m.Transcript{Lesson: m.LessonVariables, Output: buf.String()}
	lines := transcript.Lines()
	require.Len(t, lines, 5)

	// Misspellings and doubled spaces are part of the recorded transcript.
	assert.Equal(t, "Your immutalbe age is  25", lines[0])
	assert.Equal(t, "Your mutalbe age is  25", lines[1])
	assert.Equal(t, "Your mutalbe new age is  26", lines[2])
	assert.Equal(t, "You const varialbe age is 25", lines[3])
	assert.Equal(t, "Your Global varialbe hours in a day is 24", lines[4])
}

func TestShadowingExample(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, shadowingExample(&buf))

	transcript := m.Transcript{Lesson: m.LessonVariables, Output: buf.String()}
	lines := transcript.Lines()
	require.Len(t, lines, 2)

	// x starts at 5, is rebound to 6, and the nested block doubles the
	// just-rebound value. The outer binding is visible again afterwards.
	assert.Equal(t, "The value of x in the inner scope is: 12", lines[0])
	assert.Equal(t, "The value of x is: 6", lines[1])
}

func TestVariablesLessonInfo(t *testing.T) {
	assert.Equal(t, m.LessonVariables, variablesLesson.Info.Name)
	assert.Equal(t, 5, variablesLesson.Info.Lines)
	assert.NotNil(t, variablesLesson.Extra)
}
