package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranscriptLines(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []string
	}{
		{"empty", "", nil},
		{"single line", "Result = 14515200\n", []string{"Result = 14515200"}},
		{
			"multiple lines",
			"count = 4, factorial : 3628800\nResult = 14515200\n",
			[]string{"count = 4, factorial : 3628800", "Result = 14515200"},
		},
		{"no trailing newline", "one\ntwo", []string{"one", "two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transcript := Transcript{Lesson: LessonControlFlow, Output: tt.output}
			assert.Equal(t, tt.want, transcript.Lines())
		})
	}
}
