// Package pkg is a package that provides utilities for primer.
package pkg

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when a fixed-width operation would not fit its type.
var ErrOverflow = errors.New("unsigned 32-bit overflow")

// AddU32 returns a + b, or ErrOverflow when the sum exceeds 32 bits.
func AddU32(a, b uint32) (uint32, error) {
	if b > math.MaxUint32-a {
		return 0, fmt.Errorf("%d + %d: %w", a, b, ErrOverflow)
	}

	return a + b, nil
}

// SubU32 returns a - b, or ErrOverflow when the difference would wrap below zero.
func SubU32(a, b uint32) (uint32, error) {
	if b > a {
		return 0, fmt.Errorf("%d - %d: %w", a, b, ErrOverflow)
	}

	return a - b, nil
}

// MulU32 returns a * b, or ErrOverflow when the product exceeds 32 bits.
func MulU32(a, b uint32) (uint32, error) {
	product := uint64(a) * uint64(b)
	if product > math.MaxUint32 {
		return 0, fmt.Errorf("%d * %d: %w", a, b, ErrOverflow)
	}

	return uint32(product), nil
}
