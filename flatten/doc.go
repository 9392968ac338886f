// Package flatten turns nested sequences ("slices of slices…") into one flat,
// ordered []any, with a depth budget, optional deep copy, and a fast path for
// rectangular inputs of known shape.
//
// 🚀 Two algorithms:
//
//	Generic  — depth-bounded pre-order walk for irregular nesting. Runs on an
//	           explicit stack, so very deep inputs cannot overflow.
//	Shaped   — for a fixed Shape (rank + extents), a reusable ShapeFlattener
//	           enumerates coordinates in row-major order with an odometer:
//	           no per-element "is this a sequence?" test, no recursion.
//
// ✨ Key features:
//   - WithDepth(k): stop after k levels; deeper sequences stay as elements.
//   - WithDepth(0): the input is returned untouched (copy is not applied).
//   - WithMatrix(true): infer the shape from the first element of each level.
//   - WithCopy(true): deep copy every retained element (DeepCopy by default,
//     replaceable with WithCopyFunc).
//   - CreateFlatten(shape): build once, reuse for a stream of same-shaped data.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/nestflat/flatten"
//
//	out, err := flatten.Flatten([]any{1, []any{2, []any{3}}})
//	// out == []any{1, 2, 3}
//
//	f, err := flatten.CreateFlatten(flatten.Shape{3, 3}, flatten.WithCopy(true))
//	for _, m := range matrices {
//	  flat, err := f.Flatten(m)
//	  ...
//	}
//
// What counts as a sequence:
//
//	Any slice or array except []byte. []any is read directly; typed slices
//	such as [][]float64 are read through reflect. Everything else is a leaf.
//
// Errors:
//
//	ErrInvalidArgument, ErrInvalidOption and ErrShapeMismatch; check with
//	errors.Is. All argument and option checks run before traversal starts.
//
// Performance:
//
//   - Generic: O(visited nodes) time, O(output + nesting depth) memory.
//   - Shaped:  O(Len()) time and memory, O(rank) extra.
//
// Cyclic inputs are not detected; the generic walk may not terminate on them.
package flatten
