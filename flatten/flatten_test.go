// SPDX-License-Identifier: MIT
// Package flatten_test covers the Flatten dispatcher: validation, depth
// budgets, matrix mode and the copy stage.
package flatten_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/nestflat/flatten"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nested returns [1,[2,[3,[4,[5],6],7],8],9].
func nested() []any {
	return []any{1, []any{2, []any{3, []any{4, []any{5}, 6}, 7}, 8}, 9}
}

// TestFlatten_NotASequence verifies ErrInvalidArgument for non-sequence input.
func TestFlatten_NotASequence(t *testing.T) {
	t.Parallel()

	values := []any{"5", 5, true, nil, math.NaN(), map[string]any{}, func() {}, []byte("abc")}
	for _, v := range values {
		_, err := flatten.Flatten(v)
		assert.ErrorIs(t, err, flatten.ErrInvalidArgument, "value %v", v)
	}
}

// TestFlatten_NegativeDepth verifies ErrInvalidOption for a negative depth.
func TestFlatten_NegativeDepth(t *testing.T) {
	t.Parallel()

	_, err := flatten.Flatten([]any{}, flatten.WithDepth(-1))
	assert.ErrorIs(t, err, flatten.ErrInvalidOption)
}

// TestFlatten_ArgumentCheckedBeforeOptions pins the error priority.
func TestFlatten_ArgumentCheckedBeforeOptions(t *testing.T) {
	t.Parallel()

	_, err := flatten.Flatten(5, flatten.WithDepth(-1))
	assert.ErrorIs(t, err, flatten.ErrInvalidArgument)
	assert.False(t, errors.Is(err, flatten.ErrInvalidOption))
}

// TestFlatten_Depths runs the canonical input through several budgets.
func TestFlatten_Depths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []flatten.Option
		want []any
	}{
		{"default", nil, []any{1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"unbounded", []flatten.Option{flatten.WithUnboundedDepth()}, []any{1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"depth 1", []flatten.Option{flatten.WithDepth(1)}, []any{1, 2, []any{3, []any{4, []any{5}, 6}, 7}, 8, 9}},
		{"depth 2", []flatten.Option{flatten.WithDepth(2)}, []any{1, 2, 3, []any{4, []any{5}, 6}, 7, 8, 9}},
		{"depth 3", []flatten.Option{flatten.WithDepth(3)}, []any{1, 2, 3, 4, []any{5}, 6, 7, 8, 9}},
		{"depth beyond nesting", []flatten.Option{flatten.WithDepth(50)}, []any{1, 2, 3, 4, 5, 6, 7, 8, 9}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := flatten.Flatten(nested(), tc.opts...)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Flatten mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestFlatten_PartialKeepsReferences checks that retained sub-sequences alias the input.
func TestFlatten_PartialKeepsReferences(t *testing.T) {
	t.Parallel()

	arr := nested()
	got, err := flatten.Flatten(arr, flatten.WithDepth(2))
	require.NoError(t, err)

	inner := arr[1].([]any)[1].([]any)[1].([]any)
	kept := got[3].([]any)
	assert.True(t, &inner[0] == &kept[0], "depth-limited sub-sequence must be the input's own slice")
}

// TestFlatten_DepthZeroIdentity verifies that depth 0 returns the input itself.
func TestFlatten_DepthZeroIdentity(t *testing.T) {
	t.Parallel()

	arr := nested()
	got, err := flatten.Flatten(arr, flatten.WithDepth(0))
	require.NoError(t, err)
	require.Len(t, got, len(arr))
	assert.True(t, &got[0] == &arr[0], "depth 0 must return the same slice")

	// matrix and copy are ignored at depth 0
	got, err = flatten.Flatten(arr, flatten.WithDepth(0), flatten.WithMatrix(true), flatten.WithCopy(true))
	require.NoError(t, err)
	assert.True(t, &got[0] == &arr[0], "depth 0 bypasses matrix and copy")
}

// TestFlatten_DepthZeroTypedInput returns a shallow view for typed slices.
func TestFlatten_DepthZeroTypedInput(t *testing.T) {
	t.Parallel()

	arr := [][]int{{1, 2}, {3}}
	got, err := flatten.Flatten(arr, flatten.WithDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []any{[]int{1, 2}, []int{3}}, got)
}

// TestFlatten_NoNesting covers the flat-input and idempotence properties.
func TestFlatten_NoNesting(t *testing.T) {
	t.Parallel()

	flat := []any{"a", 2, 3.5, nil, map[string]any{"k": 1}, []byte("raw")}
	got, err := flatten.Flatten(flat)
	require.NoError(t, err)
	if diff := cmp.Diff(flat, got); diff != "" {
		t.Errorf("flat input changed (-want +got):\n%s", diff)
	}
	assert.False(t, &got[0] == &flat[0], "output must be a fresh slice")

	again, err := flatten.Flatten(got)
	require.NoError(t, err)
	if diff := cmp.Diff(got, again); diff != "" {
		t.Errorf("flatten is not idempotent (-first +second):\n%s", diff)
	}
}

// TestFlatten_EmptyLevels drops empty nested sequences entirely.
func TestFlatten_EmptyLevels(t *testing.T) {
	t.Parallel()

	got, err := flatten.Flatten([]any{[]any{}, 1, []any{[]any{}, []any{2}}, []int(nil)})
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, got)

	got, err = flatten.Flatten([]any{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestFlatten_TypedSlices reads non-[]any sequences through reflection.
func TestFlatten_TypedSlices(t *testing.T) {
	t.Parallel()

	got, err := flatten.Flatten([][]int{{1, 2}, {3}})
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3}, got)

	got, err = flatten.Flatten([]any{[2]string{"a", "b"}, [][]float64{{1.5}, {2.5}}})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b", 1.5, 2.5}, got)
}

// TestFlatten_DoesNotMutateInput checks the input tree after every mode.
func TestFlatten_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	arr := nested()
	modes := [][]flatten.Option{
		nil,
		{flatten.WithDepth(2)},
		{flatten.WithCopy(true)},
		{flatten.WithMatrix(true), flatten.WithDepth(1)},
	}
	for _, opts := range modes {
		_, err := flatten.Flatten(arr, opts...)
		require.NoError(t, err)
		if diff := cmp.Diff(nested(), arr); diff != "" {
			t.Fatalf("input mutated (-want +got):\n%s", diff)
		}
	}
}

// TestFlatten_DeepNestingIsStackSafe flattens a very deep chain.
func TestFlatten_DeepNestingIsStackSafe(t *testing.T) {
	t.Parallel()

	const levels = 100_000
	var v any = "leaf"
	for i := 0; i < levels; i++ {
		v = []any{v}
	}
	got, err := flatten.Flatten(v)
	require.NoError(t, err)
	assert.Equal(t, []any{"leaf"}, got)
}

// TestFlatten_Matrix covers shape inference on rectangular input.
func TestFlatten_Matrix(t *testing.T) {
	t.Parallel()

	arr := []any{
		[]any{1, 2, 3},
		[]any{4, 5, 6},
		[]any{7, 8, 9},
	}
	got, err := flatten.Flatten(arr, flatten.WithMatrix(true))
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3, 4, 5, 6, 7, 8, 9}, got)

	// depth limits the inferred rank
	got, err = flatten.Flatten(arr, flatten.WithMatrix(true), flatten.WithDepth(1))
	require.NoError(t, err)
	assert.Equal(t, arr, got)

	// typed 3D input
	cube := [][][]int{{{1, 2}, {3, 4}}, {{5, 6}, {7, 8}}}
	got, err = flatten.Flatten(cube, flatten.WithMatrix(true))
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3, 4, 5, 6, 7, 8}, got)

	// empty input infers shape [0]
	got, err = flatten.Flatten([]any{}, flatten.WithMatrix(true))
	require.NoError(t, err)
	assert.Empty(t, got)

	// every row empty infers shape [2 0]
	got, err = flatten.Flatten([]any{[]any{}, []any{}}, flatten.WithMatrix(true))
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestFlatten_MatrixSizeOverflow rejects an inferred shape whose size does
// not fit in an int. Sixty-four levels of [x, x] share one node per level,
// so the input is tiny while its logical size is 2^64.
func TestFlatten_MatrixSizeOverflow(t *testing.T) {
	t.Parallel()

	var x any = 1
	for i := 0; i < 64; i++ {
		x = []any{x, x}
	}
	got, err := flatten.Flatten(x, flatten.WithMatrix(true))
	assert.ErrorIs(t, err, flatten.ErrInvalidArgument)
	assert.Nil(t, got)
}

// TestFlatten_MatrixRagged verifies that ragged input fails instead of
// producing malformed output.
func TestFlatten_MatrixRagged(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		arr  any
	}{
		{"short row", []any{[]any{1, 2}, []any{3}}},
		{"long row", []any{[]any{1, 2}, []any{3, 4, 5}}},
		{"leaf row", []any{[]any{1, 2}, 3}},
		{"deep ragged", []any{[]any{[]any{1}, []any{2}}, []any{[]any{3}, 4}}},
		{"empty first row", []any{[]any{}, []any{1, 2}}},
		{"empty first row then leaf", []any{[]any{}, 7}},
		{"empty deep level", []any{[]any{[]any{}, []any{}}, []any{[]any{}, []any{1}}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := flatten.Flatten(tc.arr, flatten.WithMatrix(true))
			assert.ErrorIs(t, err, flatten.ErrShapeMismatch)
			assert.Nil(t, got, "no partial output on mismatch")
		})
	}
}

// TestFlatten_MatrixMatchesGeneric compares both algorithms on rectangular input.
func TestFlatten_MatrixMatchesGeneric(t *testing.T) {
	t.Parallel()

	arr := make([]any, 4)
	n := 0
	for i := range arr {
		row := make([]any, 5)
		for j := range row {
			col := make([]any, 3)
			for k := range col {
				col[k] = n
				n++
			}
			row[j] = col
		}
		arr[i] = row
	}
	viaMatrix, err := flatten.Flatten(arr, flatten.WithMatrix(true))
	require.NoError(t, err)
	viaGeneric, err := flatten.Flatten(arr, flatten.WithDepth(3))
	require.NoError(t, err)
	if diff := cmp.Diff(viaGeneric, viaMatrix); diff != "" {
		t.Errorf("matrix vs generic (-generic +matrix):\n%s", diff)
	}
	require.Len(t, viaMatrix, 60)
}

// TestFlatten_CopyGeneric verifies the copy stage on the generic path.
func TestFlatten_CopyGeneric(t *testing.T) {
	t.Parallel()

	arr := nested()
	got, err := flatten.Flatten(arr, flatten.WithDepth(2), flatten.WithCopy(true))
	require.NoError(t, err)
	if diff := cmp.Diff([]any{1, 2, 3, []any{4, []any{5}, 6}, 7, 8, 9}, got); diff != "" {
		t.Errorf("copy result (-want +got):\n%s", diff)
	}
	inner := arr[1].([]any)[1].([]any)[1].([]any)
	kept := got[3].([]any)
	assert.False(t, &inner[0] == &kept[0], "retained sub-sequence must be copied")
	assert.False(t, &inner[1].([]any)[0] == &kept[1].([]any)[0], "copy must be deep")
}

// TestFlatten_CopyMatrix verifies the copy stage bound into the shaped path.
func TestFlatten_CopyMatrix(t *testing.T) {
	t.Parallel()

	obj := map[string]any{"x": 5}
	arr := []any{[]any{1, obj}, []any{3, 4}}
	got, err := flatten.Flatten(arr, flatten.WithMatrix(true), flatten.WithCopy(true))
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, obj, got[1])
	assert.NotEqual(t, reflect.ValueOf(obj).Pointer(), reflect.ValueOf(got[1]).Pointer(),
		"copied element must not share the map")
}

// TestFlatten_CopyFunc swaps the copy procedure.
func TestFlatten_CopyFunc(t *testing.T) {
	t.Parallel()

	calls := 0
	tag := func(v any) any {
		calls++
		return []any{"copy", v}
	}

	got, err := flatten.Flatten([]any{1, []any{2}}, flatten.WithCopyFunc(tag))
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, got, "copy func alone does not enable copying")
	assert.Zero(t, calls)

	got, err = flatten.Flatten([]any{1, []any{2}}, flatten.WithCopyFunc(tag), flatten.WithCopy(true))
	require.NoError(t, err)
	assert.Equal(t, []any{[]any{"copy", 1}, []any{"copy", 2}}, got)
	assert.Equal(t, 2, calls)
}

// TestInferShape walks index 0 per level.
func TestInferShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		arr   any
		depth flatten.Depth
		want  flatten.Shape
	}{
		{"matrix", []any{[]any{1, 2, 3}, []any{4, 5, 6}}, flatten.Unbounded, flatten.Shape{2, 3}},
		{"depth bound", []any{[]any{1, 2, 3}, []any{4, 5, 6}}, 1, flatten.Shape{2}},
		{"leaf stops", []any{1, []any{2}}, flatten.Unbounded, flatten.Shape{2}},
		{"empty level", []any{[]any{}, []any{}}, flatten.Unbounded, flatten.Shape{2, 0}},
		{"typed cube", [][][]int{{{1}}, {{2}}}, flatten.Unbounded, flatten.Shape{2, 1, 1}},
		{"depth zero", []any{[]any{1}}, 0, nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := flatten.InferShape(tc.arr, tc.depth)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := flatten.InferShape(7, flatten.Unbounded)
	assert.ErrorIs(t, err, flatten.ErrInvalidArgument)
	_, err = flatten.InferShape([]any{}, -2)
	assert.ErrorIs(t, err, flatten.ErrInvalidOption)
}

// TestFlattenGenericKernel pins the white-box kernel against the public API.
func TestFlattenGenericKernel(t *testing.T) {
	t.Parallel()

	got := flatten.FlattenGeneric_TestOnly(nested(), 2)
	want, err := flatten.Flatten(nested(), flatten.WithDepth(2))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
