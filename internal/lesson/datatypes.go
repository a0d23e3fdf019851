package lesson

import (
	"fmt"
	"io"

	m "primer.dev/pkg/primer/internal/model"
)

var dataTypesLesson = Lesson{
	Info: m.Info{
		Name:    m.LessonDataTypes,
		Topic:   "numbers",
		Summary: "Float widths, precision loss and explicit coercion",
		Lines:   3,
	},
	Run: runDataTypes,
}

func runDataTypes(w io.Writer) error {
	floatingTypes(w)
	numericOperations(w)

	return nil
}

// floatingTypes stores over-precise literals into both float widths; what
// gets printed is what each width can actually hold, not the literal.
func floatingTypes(w io.Writer) {
	var myF32 float32 = 21.321654651651651

	var myF64 float64 = 21.21354651654165165416

	fmt.Fprintln(w, "My F32 :", myF32)
	fmt.Fprintln(w, "My F64 :", myF64)
}

// numericOperations performs the four basic operations. Mixed-type
// arithmetic is never implicit: integers are widened with an explicit
// conversion before meeting a float.
func numericOperations(w io.Writer) {
	sum := 5 + 5

	difference := 5.5 - 6.23

	var scale int32 = 20
	multiple := 5.5 * float64(scale)

	var numerator int32 = 5
	divide := float64(numerator) / 5.5

	fmt.Fprintf(w, "Sum : %v, Difference : %v, Multiple : %v, Divide : %v\n",
		sum, difference, multiple, divide)
}
