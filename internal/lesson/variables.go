package lesson

import (
	"fmt"
	"io"

	m "primer.dev/pkg/primer/internal/model"
)

// hoursInDay is the package-level constant every step can read.
const hoursInDay = 24

var variablesLesson = Lesson{
	Info: m.Info{
		Name:    m.LessonVariables,
		Topic:   "bindings",
		Summary: "Mutability, constants and block-scoped shadowing",
		Lines:   5,
	},
	Run:   runVariables,
	Extra: shadowingExample,
}

// The misspellings and doubled spaces in these messages are part of the
// recorded transcript. Keep them as-is.

func runVariables(w io.Writer) error {
	immutableExample(w)
	mutableExample(w)
	constExample(w)

	fmt.Fprintf(w, "Your Global varialbe hours in a day is %d\n", hoursInDay)

	return nil
}

// immutableExample binds once; rebinding a constant would not compile.
func immutableExample(w io.Writer) {
	const age = 25
	fmt.Fprintf(w, "Your immutalbe age is  %d\n", age)
}

func mutableExample(w io.Writer) {
	age := 25
	fmt.Fprintf(w, "Your mutalbe age is  %d\n", age)

	age = 26
	fmt.Fprintf(w, "Your mutalbe new age is  %d\n", age)
}

func constExample(w io.Writer) {
	const age = 25
	fmt.Fprintf(w, "You const varialbe age is %d\n", age)
}

// shadowingExample is the extended walk: the nested block's x hides the
// outer one until the block ends, then the outer value is visible again.
func shadowingExample(w io.Writer) error {
	x := 5

	x = x + 1

	{
		x := x * 2
		fmt.Fprintf(w, "The value of x in the inner scope is: %d\n", x)
	}

	fmt.Fprintf(w, "The value of x is: %d\n", x)

	return nil
}
