// SPDX-License-Identifier: MIT
package flatten

import "github.com/mohae/deepcopy"

// CopyFunc returns a value structurally equal to v that shares no mutable
// substructure with it. It must be safe for concurrent use.
type CopyFunc func(v any) any

// DeepCopy is the default CopyFunc. Slices, maps, pointers and structs are
// duplicated recursively (unexported struct fields are not carried over);
// scalars are returned as-is. Cyclic values are not supported.
func DeepCopy(v any) any {
	return deepcopy.Copy(v)
}

// copyAll replaces each element of out with fn(element), in place.
// out must be a freshly allocated slice owned by the caller.
func copyAll(out []any, fn CopyFunc) []any {
	for i, v := range out {
		out[i] = fn(v)
	}

	return out
}
