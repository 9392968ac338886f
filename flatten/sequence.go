// SPDX-License-Identifier: MIT
package flatten

import (
	"reflect"

	"github.com/katalvlaran/nestflat/internal/validate"
)

// sequence is a read-only view over a slice or array.
// []any is accessed directly; every other slice kind goes through reflect.
type sequence struct {
	fast []any
	rv   reflect.Value
	n    int
}

// asSequence wraps v when it is a sequence (see validate.IsSequence).
func asSequence(v any) (sequence, bool) {
	if s, ok := v.([]any); ok {
		return sequence{fast: s, n: len(s)}, true
	}
	if !validate.IsSequence(v) {
		return sequence{}, false
	}
	rv := reflect.ValueOf(v)

	return sequence{rv: rv, n: rv.Len()}, true
}

// Len returns the number of elements.
func (s sequence) Len() int { return s.n }

// At returns the i-th element. i must be in range.
func (s sequence) At(i int) any {
	if s.fast != nil {
		return s.fast[i]
	}

	return s.rv.Index(i).Interface()
}

// toAny returns the elements as []any. A []any input is returned unchanged;
// other kinds are copied into a shallow view.
func (s sequence) toAny() []any {
	if s.fast != nil || !s.rv.IsValid() {
		return s.fast
	}
	out := make([]any, s.n)
	for i := range out {
		out[i] = s.rv.Index(i).Interface()
	}

	return out
}
