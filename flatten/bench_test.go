// SPDX-License-Identifier: MIT
package flatten_test

import (
	"testing"

	"github.com/katalvlaran/nestflat/flatten"
)

// grid builds an n×n []any matrix of ints.
func grid(n int) []any {
	m := make([]any, n)
	for i := range m {
		row := make([]any, n)
		for j := range row {
			row[j] = i*n + j
		}
		m[i] = row
	}

	return m
}

// BenchmarkFlatten_Generic256 benchmarks the generic walk on a 256×256 matrix.
func BenchmarkFlatten_Generic256(b *testing.B) {
	m := grid(256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := flatten.Flatten(m); err != nil {
			b.Fatalf("Flatten failed: %v", err)
		}
	}
}

// BenchmarkFlatten_Matrix256 benchmarks matrix mode (infer + shaped run).
func BenchmarkFlatten_Matrix256(b *testing.B) {
	m := grid(256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := flatten.Flatten(m, flatten.WithMatrix(true)); err != nil {
			b.Fatalf("Flatten failed: %v", err)
		}
	}
}

// BenchmarkShapeFlattener256 benchmarks a prebuilt flattener (build cost amortized).
func BenchmarkShapeFlattener256(b *testing.B) {
	m := grid(256)
	f, err := flatten.CreateFlatten(flatten.Shape{256, 256})
	if err != nil {
		b.Fatalf("CreateFlatten failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.Flatten(m); err != nil {
			b.Fatalf("Flatten failed: %v", err)
		}
	}
}

// BenchmarkFlatten_Copy64 benchmarks the deep-copy stage on a 64×64 matrix.
func BenchmarkFlatten_Copy64(b *testing.B) {
	m := grid(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := flatten.Flatten(m, flatten.WithCopy(true)); err != nil {
			b.Fatalf("Flatten failed: %v", err)
		}
	}
}
