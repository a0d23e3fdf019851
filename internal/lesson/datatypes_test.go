package lesson

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatingTypes(t *testing.T) {
	var buf bytes.Buffer
	floatingTypes(&buf)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	// The float32 line shows the rounded stored value, not the source
	// literal's digit sequence.
	assert.Equal(t, "My F32 : 21.321655", lines[0])
	assert.Equal(t, "My F64 : 21.21354651654165", lines[1])
}

func TestNumericOperations(t *testing.T) {
	var buf bytes.Buffer
	numericOperations(&buf)

	line := strings.TrimSuffix(buf.String(), "\n")
	assert.Equal(t,
		"Sum : 10, Difference : -0.73, Multiple : 110, Divide : 0.9090909090909091",
		line,
	)
}

func TestRunDataTypes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runDataTypes(&buf))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "My F32 :"))
	assert.True(t, strings.HasPrefix(lines[2], "Sum : 10,"))
}
