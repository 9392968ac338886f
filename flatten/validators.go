// SPDX-License-Identifier: MIT
// Package: flatten
//
// Purpose:
//   - Keep the entry points minimal by delegating argument checks here.
//   - Return sentinels tagged with the validator name so call sites can wrap uniformly.
//
// Note:
//   - Every check runs before traversal; nothing here allocates beyond the error value.

package flatten

import "github.com/katalvlaran/nestflat/internal/validate"

// ValidateSequence ensures arr is a slice or array (not []byte).
//
// Errors: ErrInvalidArgument.
// Complexity: O(1).
func ValidateSequence(arr any) error {
	if !validate.IsSequence(arr) {
		return validatorErrorf("ValidateSequence", ErrInvalidArgument)
	}

	return nil
}

// ValidateShape ensures s is non-empty, every extent is > 0, and the
// product of extents fits in an int.
//
// Errors: ErrInvalidArgument.
// Complexity: O(rank).
func ValidateShape(s Shape) error {
	if len(s) == 0 {
		return validatorErrorf("ValidateShape: empty", ErrInvalidArgument)
	}
	for _, d := range s {
		if d <= 0 {
			return validatorErrorf("ValidateShape: non-positive extent", ErrInvalidArgument)
		}
	}
	if _, ok := s.product(); !ok {
		return validatorErrorf("ValidateShape: size overflows int", ErrInvalidArgument)
	}

	return nil
}
