// SPDX-License-Identifier: MIT
package flatten

// frame is one level of the explicit traversal stack.
type frame struct {
	seq    sequence
	next   int   // index of the next child to visit
	budget Depth // levels still allowed below this node
}

// flattenGeneric — depth-bounded flattening of irregular nesting.
//
// Algorithm Outline:
//  1. Push the root with the full budget.
//  2. Pop the next child of the top frame (left to right).
//  3. If the frame still has budget and the child is a sequence, push it
//     with budget-1 (Unbounded stays Unbounded) and continue with it.
//  4. Otherwise append the child, unchanged, to the output.
//  5. Frames whose children are exhausted are popped.
//
// The result is the pre-order, left-to-right enumeration of the leaves
// reachable within the budget. The traversal holds one frame per open level
// on the heap, so nesting depth is bounded by memory rather than stack size.
//
// Complexity:
//
//	Time   = O(total visited nodes)
//	Memory = O(output + nesting depth)
//
// depth must be Unbounded or > 0; depth 0 is handled by the caller.
func flattenGeneric(root sequence, depth Depth) []any {
	out := make([]any, 0, root.Len())
	stack := make([]frame, 1, 8)
	stack[0] = frame{seq: root, budget: depth}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= top.seq.Len() {
			stack = stack[:len(stack)-1]
			continue
		}
		v := top.seq.At(top.next)
		top.next++

		if top.budget != 0 {
			if child, ok := asSequence(v); ok {
				nb := top.budget
				if nb > 0 {
					nb--
				}
				stack = append(stack, frame{seq: child, budget: nb})
				continue
			}
		}
		out = append(out, v)
	}

	return out
}
