// SPDX-License-Identifier: MIT
// Package: affine
//
// Purpose:
//   - Single source of truth for index and divisor guards.
//   - Guards panic: an out-of-range index or a zero divisor is a programmer
//     error, checked in every build.

package affine

import "github.com/katalvlaran/trsmath/fixed"

// mustIndex panics unless 0 <= i < n.
func mustIndex(i, n int) {
	if i < 0 || i >= n {
		panic(panicIndexOutOfRange)
	}
}

// mustRowCol panics unless row and col both address an n×n matrix.
func mustRowCol(row, col, n int) {
	mustIndex(row, n)
	mustIndex(col, n)
}

// mustNonZero panics if the logical divisor s is zero.
func mustNonZero[T fixed.Scalar](s T) {
	if s == 0 {
		panic(panicDivideByZero)
	}
}

// scaleRaw multiplies a stored value by a logical scalar.
// The stored domain is linear, so no decode is needed; integral products
// are widened and wrapped to the stored width.
func scaleRaw[T fixed.Scalar](raw, s T) T {
	if !fixed.IsIntegral[T]() {
		return raw * s
	}

	return fixed.Wrap[T](int64(raw) * int64(s))
}

// tolerances returns the per-kind thresholds used by the decomposition:
// the length below which a scale axis is degenerate, and the distance from
// ±1 at which the middle Euler angle is treated as saturated.
func tolerances[T fixed.Scalar]() (degenerate, gimbal float64) {
	switch fixed.KindOf[T]() {
	case fixed.KindFixed:
		return 1 / fixed.Scale, 2 / fixed.Scale
	case fixed.KindFloat32:
		return 1e-6, 1e-6
	default:
		return 1e-12, 1e-9
	}
}
