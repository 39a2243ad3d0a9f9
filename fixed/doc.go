// SPDX-License-Identifier: MIT

// Package fixed is the scaled-integer codec used by the affine package.
//
// Integral scalar types are stored in Q16.16 fixed point: the physical value
// is the logical value multiplied by 2^16 and truncated to a signed 32-bit
// integer. Real scalar types are stored as-is and every codec function is the
// identity for them.
//
// The kind of a scalar (fixed-point integral, float32, float64) is derived
// from the type parameter alone; see KindOf.
//
// Resolution is 1/65536 (~1.53e-5). Values whose magnitude times 65536 does
// not fit in an int32 wrap silently. Callers that need a larger range must
// use a real scalar type.
package fixed
