// SPDX-License-Identifier: MIT
package flatten

// Test-Bridge (white-box) for private kernels.
//
// Purpose:
//   - Expose the unexported traversal kernels and option snapshot to
//     flatten_test ONLY, so black-box tests can pin kernel behavior without
//     widening the production API.

// FlattenGeneric_TestOnly runs the generic kernel on a validated sequence.
func FlattenGeneric_TestOnly(arr any, depth Depth) []any {
	root, ok := asSequence(arr)
	if !ok {
		panic("FlattenGeneric_TestOnly: not a sequence")
	}

	return flattenGeneric(root, depth)
}

// OptionsSnapshot is a read-only view of resolved Options.
type OptionsSnapshot struct {
	Depth   Depth
	Matrix  bool
	Copy    bool
	HasCopy bool
}

// GatherOptionsSnapshot_TestOnly resolves opts and returns a snapshot.
func GatherOptionsSnapshot_TestOnly(opts ...Option) (OptionsSnapshot, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return OptionsSnapshot{}, err
	}

	return OptionsSnapshot{Depth: o.depth, Matrix: o.matrix, Copy: o.copy, HasCopy: o.boundCopy() != nil}, nil
}

// PanicCopyFuncNil_TestOnly exposes the panic message to avoid magic strings.
const PanicCopyFuncNil_TestOnly = panicCopyFuncNil
