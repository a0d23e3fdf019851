// Package model holds the plain value types shared across primer.
package model

import "strings"

// Path represents a file system path.
type Path string

// Name identifies a lesson in the registry.
type Name string

// Known lesson names, in registry order.
const (
	LessonControlFlow Name = "control-flow"
	LessonDataTypes   Name = "data-types"
	LessonVariables   Name = "variables"
)

// Info describes a lesson without replaying it.
type Info struct {
	Name    Name
	Topic   string
	Summary string
	Lines   int // expected transcript line count
}

// Transcript is the captured output of a single lesson replay.
type Transcript struct {
	Lesson Name
	Output string
}

// Lines returns the transcript split into lines, without the trailing
// newline every lesson ends with.
func (t Transcript) Lines() []string {
	trimmed := strings.TrimSuffix(t.Output, "\n")
	if trimmed == "" {
		return nil
	}

	return strings.Split(trimmed, "\n")
}
