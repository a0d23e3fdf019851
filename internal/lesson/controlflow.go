package lesson

import (
	"fmt"
	"io"

	m "primer.dev/pkg/primer/internal/model"
	"primer.dev/pkg/primer/pkg"
)

const (
	// startCount is the outer countdown's initial value.
	startCount uint32 = 4
	// innerBound is the number whose factorial each outer pass computes.
	innerBound uint32 = 10
)

var controlFlowLesson = Lesson{
	Info: m.Info{
		Name:    m.LessonControlFlow,
		Topic:   "loops",
		Summary: "Labeled loops and a fixed-width factorial accumulator",
		Lines:   5,
	},
	Run: runControlFlow,
}

// runControlFlow sums 10! over a countdown from 4, printing each term and
// the accumulated result. All arithmetic stays in unsigned 32-bit range
// through the checked helpers; an overflow aborts the lesson.
//
// The inner loop carries a labeled transfer back to the outer loop. The
// outer loop's own zero-check always fires first with these inputs, so the
// transfer never runs; it is kept because the countdown is written as a
// pair of open-ended loops and the guard is what makes the pair total.
func runControlFlow(w io.Writer) error {
	count := startCount
	result := uint32(0)

counting:
	for {
		if count == 0 {
			break
		}

		num := innerBound
		factorial := uint32(1)

		for num != 1 {
			if count == 0 {
				continue counting
			}

			var err error

			factorial, err = pkg.MulU32(factorial, num)
			if err != nil {
				return fmt.Errorf("factorial term: %w", err)
			}

			num, err = pkg.SubU32(num, 1)
			if err != nil {
				return fmt.Errorf("inner countdown: %w", err)
			}
		}

		var err error

		result, err = pkg.AddU32(result, factorial)
		if err != nil {
			return fmt.Errorf("accumulate result: %w", err)
		}

		fmt.Fprintf(w, "count = %d, factorial : %d\n", count, factorial)

		count, err = pkg.SubU32(count, 1)
		if err != nil {
			return fmt.Errorf("outer countdown: %w", err)
		}
	}

	fmt.Fprintf(w, "Result = %d\n", result)

	return nil
}
