package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "stable", Stable.String())
	assert.Equal(t, "unstable", Unstable.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "unknown", Verdict(42).String())
}

func TestVerdictYAMLRoundTrip(t *testing.T) {
	for _, verdict := range []Verdict{Stable, Unstable, Failed} {
		data, err := yaml.Marshal(verdict)
		require.NoError(t, err)
		assert.Equal(t, verdict.String()+"\n", string(data))

		var decoded Verdict
		require.NoError(t, yaml.Unmarshal(data, &decoded))
		assert.Equal(t, verdict, decoded)
	}
}

func TestVerdictYAMLUnknownLabel(t *testing.T) {
	var decoded Verdict
	err := yaml.Unmarshal([]byte("flaky\n"), &decoded)
	require.Error(t, err)
}

func TestAllStable(t *testing.T) {
	assert.True(t, AllStable(nil))
	assert.True(t, AllStable([]CheckReport{
		{Lesson: LessonControlFlow, Verdict: Stable},
		{Lesson: LessonVariables, Verdict: Stable},
	}))
	assert.False(t, AllStable([]CheckReport{
		{Lesson: LessonControlFlow, Verdict: Stable},
		{Lesson: LessonVariables, Verdict: Unstable},
	}))
}
