// SPDX-License-Identifier: MIT
// Package validate holds the raw-input predicates used by nestflat.
//
// Purpose:
//   - Answer "what kind of value is this?" for decoded, untyped data
//     (JSON/YAML trees, CLI config) before any traversal starts.
//   - Stay pure: predicates never allocate beyond reflect.ValueOf and never mutate.
//
// Notes:
//   - A sequence is any slice or array except []byte, which is treated as an
//     opaque blob (a leaf), never as a nested level.
//   - Numbers decoded from JSON arrive as float64; integral floats count as integers.
package validate

import (
	"math"
	"reflect"
)

var bytesType = reflect.TypeOf([]byte(nil))

// IsSequence reports whether v is a slice or an array (excluding []byte).
// A nil interface is not a sequence; a typed nil slice is (of length 0).
func IsSequence(v any) bool {
	switch v.(type) {
	case nil:
		return false
	case []any:
		return true
	case []byte:
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		return rv.Type() != bytesType
	case reflect.Array:
		return true
	default:
		return false
	}
}

// IsObject reports whether v is a string-keyed map, i.e. a structured option set.
func IsObject(v any) bool {
	switch v.(type) {
	case map[string]any:
		return true
	case nil:
		return false
	}
	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String
}

// IsBoolean reports whether v is a bool primitive.
func IsBoolean(v any) bool {
	_, ok := v.(bool)

	return ok
}

// AsNonNegativeInteger returns v as an int when v is a non-negative integer.
// Signed, unsigned and integral finite floats are accepted.
func AsNonNegativeInteger(v any) (int, bool) {
	n, ok := AsInteger(v)
	if !ok || n < 0 {
		return 0, false
	}

	return n, true
}

// IsNonNegativeInteger reports whether v is an integer >= 0.
func IsNonNegativeInteger(v any) bool {
	_, ok := AsNonNegativeInteger(v)

	return ok
}

// IsPositiveInteger reports whether v is an integer > 0.
func IsPositiveInteger(v any) bool {
	n, ok := AsInteger(v)

	return ok && n > 0
}

// AsInteger converts any Go numeric value holding an integral quantity to int.
// Booleans, strings, NaN, ±Inf and fractional floats are rejected.
func AsInteger(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n > math.MaxInt || n < math.MinInt {
			return 0, false
		}
		return int(n), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return 0, false
		}
		if f > math.MaxInt || f < math.MinInt {
			return 0, false
		}
		return int(f), true
	default:
		return 0, false
	}
}

// AsPositiveIntegerArray converts a non-empty sequence of positive integers to []int.
// Returns false for non-sequences, empty sequences, and any non-positive entry.
func AsPositiveIntegerArray(v any) ([]int, bool) {
	if !IsSequence(v) {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	n := rv.Len()
	if n == 0 {
		return nil, false
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		d, ok := AsInteger(rv.Index(i).Interface())
		if !ok || d <= 0 {
			return nil, false
		}
		out[i] = d
	}

	return out, true
}

// IsPositiveIntegerArray reports whether v is a non-empty sequence of integers > 0.
func IsPositiveIntegerArray(v any) bool {
	_, ok := AsPositiveIntegerArray(v)

	return ok
}
