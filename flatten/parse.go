// SPDX-License-Identifier: MIT
package flatten

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/nestflat/internal/validate"
)

// Raw option keys understood by ParseOptions.
const (
	KeyDepth  = "depth"
	KeyMatrix = "matrix"
	KeyCopy   = "copy"
)

// ParseOptions converts an untyped option set, typically decoded from JSON or
// YAML, into Options. Unknown keys are ignored.
//
//   - depth  — non-negative integer (integral floats accepted).
//   - matrix — bool.
//   - copy   — bool.
//
// Errors:
//   - ErrInvalidArgument — raw is not a string-keyed map.
//   - ErrInvalidOption   — a known key carries a value of the wrong kind.
func ParseOptions(raw any) ([]Option, error) {
	if !validate.IsObject(raw) {
		return nil, fmt.Errorf("ParseOptions: options must be an object, got %T: %w", raw, ErrInvalidArgument)
	}
	fields := objectFields(raw)

	var opts []Option
	if v, ok := fields[KeyMatrix]; ok {
		if !validate.IsBoolean(v) {
			return nil, fmt.Errorf("ParseOptions: %s must be a boolean, got %v: %w", KeyMatrix, v, ErrInvalidOption)
		}
		opts = append(opts, WithMatrix(v.(bool)))
	}
	if v, ok := fields[KeyDepth]; ok {
		d, ok := validate.AsNonNegativeInteger(v)
		if !ok {
			return nil, fmt.Errorf("ParseOptions: %s must be a non-negative integer, got %v: %w", KeyDepth, v, ErrInvalidOption)
		}
		opts = append(opts, WithDepth(d))
	}
	if v, ok := fields[KeyCopy]; ok {
		if !validate.IsBoolean(v) {
			return nil, fmt.Errorf("ParseOptions: %s must be a boolean, got %v: %w", KeyCopy, v, ErrInvalidOption)
		}
		opts = append(opts, WithCopy(v.(bool)))
	}

	return opts, nil
}

// ParseShape converts an untyped list of positive integers into a Shape.
//
// Errors: ErrInvalidArgument when raw is not a non-empty sequence of integers > 0.
func ParseShape(raw any) (Shape, error) {
	d, ok := validate.AsPositiveIntegerArray(raw)
	if !ok {
		return nil, fmt.Errorf("ParseShape: shape must be a positive integer array, got %v: %w", raw, ErrInvalidArgument)
	}

	return Shape(d), nil
}

// objectFields views any string-keyed map as map[string]any.
func objectFields(raw any) map[string]any {
	if m, ok := raw.(map[string]any); ok {
		return m
	}
	rv := reflect.ValueOf(raw)
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}

	return out
}
