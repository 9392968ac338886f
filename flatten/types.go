// SPDX-License-Identifier: MIT
package flatten

import (
	"fmt"
	"math"
)

// Depth is the recursion budget of a flattening call.
//
//   - Unbounded (-1) — descend until leaves are reached.
//   - 0              — no traversal; the input is returned untouched.
//   - k > 0          — descend at most k nested levels; sequences found
//     below that level are kept as elements (by reference).
type Depth int

// Unbounded descends through every nested level.
const Unbounded Depth = -1

// String renders the budget for logs and error messages.
func (d Depth) String() string {
	if d < 0 {
		return "unbounded"
	}

	return fmt.Sprintf("%d", int(d))
}

// Shape lists the exact per-axis extents of a rectangular nested input.
// Shape{2, 3} describes [[a b c] [d e f]].
type Shape []int

// Rank returns the number of axes.
func (s Shape) Rank() int { return len(s) }

// Size returns the number of addressable elements (product of extents).
// The empty shape has size 1 by convention; a zero extent yields 0.
// The result is only meaningful when the product fits in an int, which
// ValidateShape guarantees.
func (s Shape) Size() int {
	n, _ := s.product()

	return n
}

// product multiplies the extents, reporting false on int overflow.
// A zero extent anywhere yields 0 regardless of the others.
func (s Shape) product() (int, bool) {
	n := 1
	for _, d := range s {
		if d == 0 {
			return 0, true
		}
		if d < 0 || n > math.MaxInt/d {
			return 0, false
		}
		n *= d
	}

	return n, true
}

// Strides returns the row-major strides: the last axis has stride 1 and
// stride[i] = stride[i+1]*shape[i+1].
func (s Shape) Strides() []int {
	st := make([]int, len(s))
	acc := 1
	for i := len(s) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= s[i]
	}

	return st
}

// Offset computes the flat row-major index of coords.
// For Shape{N, M, L}, Offset(i, j, k) == i*M*L + j*L + k.
//
// Errors: ErrShapeMismatch when len(coords) != Rank() or any coordinate is
// outside [0, extent).
// Complexity: O(rank).
func (s Shape) Offset(coords ...int) (int, error) {
	if len(coords) != len(s) {
		return 0, fmt.Errorf("Shape.Offset: rank %d, got %d coordinates: %w", len(s), len(coords), ErrShapeMismatch)
	}
	off := 0
	for i, c := range coords {
		if c < 0 || c >= s[i] {
			return 0, fmt.Errorf("Shape.Offset: coordinate %d on axis %d outside [0,%d): %w", c, i, s[i], ErrShapeMismatch)
		}
		off = off*s[i] + c
	}

	return off, nil
}

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	copy(out, s)

	return out
}
