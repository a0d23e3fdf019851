package lesson

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "primer.dev/pkg/primer/internal/model"
)

func TestRunControlFlow(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runControlFlow(&buf))

	transcript := m.Transcript{Lesson: m.LessonControlFlow, Output: buf.String()}
	lines := transcript.Lines()
	require.Len(t, lines, 5)

	// 10! is the same for every outer count because the inner bound is fixed.
	assert.Equal(t, "count = 4, factorial : 3628800", lines[0])
	assert.Equal(t, "count = 3, factorial : 3628800", lines[1])
	assert.Equal(t, "count = 2, factorial : 3628800", lines[2])
	assert.Equal(t, "count = 1, factorial : 3628800", lines[3])
	assert.Equal(t, "Result = 14515200", lines[4])
}

func TestRunControlFlow_Deterministic(t *testing.T) {
	var first, second bytes.Buffer

	require.NoError(t, runControlFlow(&first))
	require.NoError(t, runControlFlow(&second))

	assert.Equal(t, first.String(), second.String())
}

func TestControlFlowLessonInfo(t *testing.T) {
	assert.Equal(t, m.LessonControlFlow, controlFlowLesson.Info.Name)
	assert.Equal(t, 5, controlFlowLesson.Info.Lines)
	assert.Nil(t, controlFlowLesson.Extra)
}
