// SPDX-License-Identifier: MIT
package flatten

import "fmt"

// Flatten returns the elements of the nested sequence arr as one flat slice.
//
// Behavior by option combination:
//   - WithDepth(0): arr is returned untouched. A []any input is returned as
//     the very same slice; other sequence kinds are returned as a shallow
//     []any view. WithMatrix and WithCopy are ignored.
//   - WithMatrix(true): the shape is inferred by following index 0 down to
//     the depth budget (or the first leaf, or the first empty level), and a
//     ShapeFlattener for that shape is run once. Only the first element of
//     each level is sampled; a ragged input fails with ErrShapeMismatch.
//   - otherwise: depth-bounded generic traversal, leaves appended in
//     left-to-right pre-order.
//
// With WithCopy(true) every element of the result is deep copied (including
// sub-sequences retained because the depth budget ran out).
//
// Errors:
//   - ErrInvalidArgument — arr is not a sequence, or the inferred shape
//     addresses more elements than an int can count.
//   - ErrInvalidOption   — an option carries an invalid value.
//   - ErrShapeMismatch   — matrix mode on non-rectangular input.
//
// Example:
//
//	out, err := flatten.Flatten([]any{1, []any{2, []any{3}}}, flatten.WithDepth(1))
//	// out == []any{1, 2, []any{3}}
func Flatten(arr any, opts ...Option) ([]any, error) {
	if err := ValidateSequence(arr); err != nil {
		return nil, fmt.Errorf("Flatten: %w", err)
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("Flatten: %w", err)
	}
	root, _ := asSequence(arr)

	if o.depth == 0 {
		return root.toAny(), nil
	}
	if o.matrix {
		shape := inferShape(root, o.depth)
		if _, ok := shape.product(); !ok {
			return nil, fmt.Errorf("Flatten: inferred shape %v: size overflows int: %w", shape, ErrInvalidArgument)
		}
		f := newShapeFlattener(shape, o.boundCopy())
		out, err := f.Flatten(arr)
		if err != nil {
			return nil, fmt.Errorf("Flatten: %w", err)
		}
		return out, nil
	}

	out := flattenGeneric(root, o.depth)
	if o.copy {
		out = copyAll(out, o.copyFn)
	}

	return out, nil
}

// CreateFlatten returns a reusable flattener for inputs of the given shape.
// Only WithCopy and WithCopyFunc affect the result; other options are
// validated and otherwise ignored.
//
// Errors:
//   - ErrInvalidArgument — shape is empty, has a non-positive extent, or its
//     size overflows int.
//   - ErrInvalidOption   — an option carries an invalid value.
//
// Example:
//
//	f, _ := flatten.CreateFlatten(flatten.Shape{3, 3})
//	out, err := f.Flatten(m) // m is any 3×3 nested sequence
func CreateFlatten(shape Shape, opts ...Option) (*ShapeFlattener, error) {
	if err := ValidateShape(shape); err != nil {
		return nil, fmt.Errorf("CreateFlatten(%v): %w", shape, err)
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("CreateFlatten: %w", err)
	}

	return newShapeFlattener(shape, o.boundCopy()), nil
}

// InferShape returns the shape Flatten would assume for arr in matrix mode
// with the given depth budget (Unbounded for no limit).
//
// Errors: ErrInvalidArgument when arr is not a sequence, ErrInvalidOption
// when depth is below Unbounded.
func InferShape(arr any, depth Depth) (Shape, error) {
	if err := ValidateSequence(arr); err != nil {
		return nil, fmt.Errorf("InferShape: %w", err)
	}
	if depth < Unbounded {
		return nil, fmt.Errorf("InferShape: depth %d: %w", int(depth), ErrInvalidOption)
	}
	root, _ := asSequence(arr)

	return inferShape(root, depth), nil
}

// inferShape records the length of each level along index 0.
// It stops when the budget is spent, when the next node is not a sequence,
// or after recording an empty level.
func inferShape(root sequence, depth Depth) Shape {
	var shape Shape
	cur := root
	for depth != 0 {
		shape = append(shape, cur.Len())
		if cur.Len() == 0 {
			break
		}
		next, ok := asSequence(cur.At(0))
		if !ok {
			break
		}
		cur = next
		if depth > 0 {
			depth--
		}
	}

	return shape
}
