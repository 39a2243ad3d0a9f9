// SPDX-License-Identifier: MIT
// Package affine: sentinel error set and panic messages.
// Algorithms return these sentinels (optionally wrapped via affineErrorf);
// tests match them with errors.Is. Panics are reserved for programmer errors.

package affine

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular is returned when a matrix has no inverse: its determinant
	// is below the tolerance of the scalar type.
	ErrSingular = errors.New("affine: singular matrix")

	// ErrZeroLength is returned when normalizing a vector whose length is zero
	// (within the tolerance of the scalar type).
	ErrZeroLength = errors.New("affine: zero-length vector")

	// ErrOverflow is returned when a fixed-point computation needs more than
	// the int64 intermediate range, so its result would be wrong.
	ErrOverflow = errors.New("affine: fixed-point overflow")
)

// Panic messages for programmer errors (no magic strings in tests).
const (
	panicIndexOutOfRange = "affine: index out of range"
	panicDivideByZero    = "affine: division by zero scalar"
)

// Operation tags for uniform error wrapping.
const (
	opInverse   = "Inverse"
	opNormalize = "Normalize"
)

// affineErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func affineErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
