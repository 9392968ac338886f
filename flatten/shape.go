// SPDX-License-Identifier: MIT
package flatten

// ShapeFlattener flattens inputs of one fixed Shape.
//
// The traversal plan (extents and output size) is computed once at
// construction. Flatten then walks the Cartesian product of index ranges
// with an odometer in row-major order (last axis fastest): no recursion, and
// nodes are resolved once per carry instead of once per element.
//
// A ShapeFlattener is immutable and safe for concurrent use by multiple
// goroutines on independent inputs.
type ShapeFlattener struct {
	shape  Shape
	size   int
	last   int      // deepest axis walked: rank-1, or the first zero extent
	copyFn CopyFunc // nil: elements are aliased
}

// maxPrealloc bounds the initial output capacity. A declared shape is a
// promise about the input, not proof of it, so larger outputs grow by append.
const maxPrealloc = 1 << 16

// newShapeFlattener builds the plan for shape. The caller guarantees a
// non-empty shape whose size fits in an int. Zero extents are allowed here
// (they come from inferring the shape of an empty level): the walk stops at
// the first one and the output is empty.
func newShapeFlattener(shape Shape, copyFn CopyFunc) *ShapeFlattener {
	s := shape.Clone()
	last := len(s) - 1
	for a, d := range s {
		if d == 0 {
			last = a
			break
		}
	}

	return &ShapeFlattener{shape: s, size: s.Size(), last: last, copyFn: copyFn}
}

// Shape returns a copy of the shape this flattener was built for.
func (f *ShapeFlattener) Shape() Shape { return f.shape.Clone() }

// Len returns the length of every successful output.
func (f *ShapeFlattener) Len() int { return f.size }

// Copies reports whether emitted elements are deep copied.
func (f *ShapeFlattener) Copies() bool { return f.copyFn != nil }

// Flatten returns the elements of arr in row-major order: the element at
// coordinates (i0, …, iR-1) lands at index Shape().Offset(i0, …, iR-1).
//
// Algorithm Outline:
//  1. Resolve the chain of first nodes nodes[0..last] along index 0, checking
//     at each axis that the node is a sequence with exactly the declared extent.
//     last is the innermost axis, or the first zero extent when the shape is
//     empty somewhere; every node above it is still checked.
//  2. Emit every element of the node at axis last (none for a zero extent).
//  3. Advance the odometer over axes last-1..0; the first axis that does not
//     wrap is the carry axis. Stop when axis 0 wraps.
//  4. Re-resolve nodes below the carry axis, checking each, and go to 2.
//
// Errors: ErrShapeMismatch (wrapped with the coordinate path) when arr does
// not have the declared shape. No partial output is returned.
//
// Complexity: O(Len()) time and memory, O(rank) extra.
func (f *ShapeFlattener) Flatten(arr any) ([]any, error) {
	idx := make([]int, len(f.shape))
	nodes := make([]sequence, f.last+1)

	root, err := f.resolve(arr, idx, 0)
	if err != nil {
		return nil, err
	}
	nodes[0] = root
	if err = f.descend(nodes, idx, 1); err != nil {
		return nil, err
	}
	out := make([]any, 0, min(f.size, maxPrealloc))

	last := f.last
	inner := f.shape[last]
	for {
		row := nodes[last]
		for k := 0; k < inner; k++ {
			v := row.At(k)
			if f.copyFn != nil {
				v = f.copyFn(v)
			}
			out = append(out, v)
		}

		a := last - 1
		for a >= 0 {
			idx[a]++
			if idx[a] < f.shape[a] {
				break
			}
			idx[a] = 0
			a--
		}
		if a < 0 {
			return out, nil
		}
		if err = f.descend(nodes, idx, a+1); err != nil {
			return nil, err
		}
	}
}

// descend refreshes nodes[from..last] from their parents at the current idx.
func (f *ShapeFlattener) descend(nodes []sequence, idx []int, from int) error {
	for b := from; b <= f.last; b++ {
		n, err := f.resolve(nodes[b-1].At(idx[b-1]), idx, b)
		if err != nil {
			return err
		}
		nodes[b] = n
	}

	return nil
}

// resolve checks that v is a sequence of length shape[axis].
func (f *ShapeFlattener) resolve(v any, idx []int, axis int) (sequence, error) {
	s, ok := asSequence(v)
	if !ok {
		return sequence{}, shapeErrorf(idx[:axis], axis, "expected a sequence of length %d, got %T", f.shape[axis], v)
	}
	if s.Len() != f.shape[axis] {
		return sequence{}, shapeErrorf(idx[:axis], axis, "expected length %d, got %d", f.shape[axis], s.Len())
	}

	return s, nil
}
