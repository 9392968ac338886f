// Package nestflat turns nested sequences into flat ones: irregular trees of
// slices with a depth budget, and rectangular N-dimensional data through a
// shape-specialized fast path.
//
// 🚀 What is in nestflat?
//
//	A small, dependency-light library that brings together:
//		• Generic flattening: depth-bounded, stack-safe pre-order walk
//		• Shaped flattening: build once for a Shape, reuse for every input
//		• Matrix mode: infer the shape from the first element of each level
//		• Copy stage: optional deep copy of every retained element
//
// ✨ Why choose nestflat?
//
//   - Beginner-friendly – two entry points, Flatten and CreateFlatten
//   - Rock-solid guarantees – ragged input is rejected, never misread
//   - Reusable – a ShapeFlattener is immutable and safe across goroutines
//
// Under the hood, everything is organized under these directories:
//
//	flatten/          — Flatten, CreateFlatten, Shape, options and sentinels
//	internal/validate — predicates for untyped, decoded input
//	internal/config   — YAML configuration for the CLI
//	cmd/nestflat      — command-line tool over JSON/YAML documents
//	examples/         — runnable walkthrough
//
// Quick ASCII example:
//
//	[[1 2 3]        Shape{3, 3}
//	 [4 5 6]   ──►  [1 2 3 4 5 6 7 8 9]
//	 [7 8 9]]       (row-major: last axis fastest)
//
//	go get github.com/katalvlaran/nestflat/flatten
package nestflat
