// Package lesson implements primer's bundled language-mechanics lessons
// and the runner that replays and checks them.
package lesson

import (
	"errors"
	"fmt"
	"io"

	m "primer.dev/pkg/primer/internal/model"
)

// ErrUnknownLesson is returned when a name does not match any bundled lesson.
var ErrUnknownLesson = errors.New("unknown lesson")

// Lesson couples a descriptor with the functions that replay it.
//
// Run writes the default transcript. Extra, when non-nil, writes the
// extended walk that the default transcript leaves out.
type Lesson struct {
	Info  m.Info
	Run   func(w io.Writer) error
	Extra func(w io.Writer) error
}

// All returns the bundled lessons in registry order.
func All() []Lesson {
	return []Lesson{
		controlFlowLesson,
		dataTypesLesson,
		variablesLesson,
	}
}

// Lookup resolves a single lesson by name.
func Lookup(name m.Name) (Lesson, error) {
	for _, l := range All() {
		if l.Info.Name == name {
			return l, nil
		}
	}

	return Lesson{}, fmt.Errorf("%w: %q", ErrUnknownLesson, name)
}

// Select resolves a set of names to lessons, preserving registry order for
// an empty set and argument order otherwise.
func Select(names []m.Name) ([]Lesson, error) {
	if len(names) == 0 {
		return All(), nil
	}

	lessons := make([]Lesson, 0, len(names))

	for _, name := range names {
		l, err := Lookup(name)
		if err != nil {
			return nil, err
		}

		lessons = append(lessons, l)
	}

	return lessons, nil
}
