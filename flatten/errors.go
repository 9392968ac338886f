// SPDX-License-Identifier: MIT
// Package flatten: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the flatten
// package. Every public entry point returns one of these (possibly wrapped with
// context via %w) and tests MUST check them via errors.Is.
// No function panics on user-triggered error conditions; panics are reserved
// for programmer errors in option constructors (e.g. WithCopyFunc(nil)).

package flatten

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (documented, enforced in tests):
// argument kind -> option set kind -> option fields -> shape mismatch during traversal.
// All of the first three are reported before any traversal begins.

var (
	// ErrInvalidArgument is returned when the input is not a sequence, when a
	// shape is not a non-empty list of positive integers, or when a raw option
	// set is not a structured (string-keyed) object.
	ErrInvalidArgument = errors.New("flatten: invalid argument")

	// ErrInvalidOption is returned when an individual option carries a value
	// of the wrong kind (negative depth, non-boolean matrix/copy flag).
	ErrInvalidOption = errors.New("flatten: invalid option")

	// ErrShapeMismatch is returned by a ShapeFlattener when the input does not
	// have the declared shape: a sequence was expected but a leaf was found, or
	// a sequence length differs from the declared extent for its axis.
	ErrShapeMismatch = errors.New("flatten: input does not match shape")
)

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeErrorf reports a shape mismatch at the coordinate path leading to axis.
// path holds the indices of the enclosing axes; it is copied into the message.
func shapeErrorf(path []int, axis int, format string, args ...any) error {
	return fmt.Errorf("ShapeFlattener.Flatten: axis %d at %v: %s: %w",
		axis, path, fmt.Sprintf(format, args...), ErrShapeMismatch)
}
