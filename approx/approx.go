// SPDX-License-Identifier: MIT

package approx

import (
	"math"

	"github.com/katalvlaran/trsmath/fixed"
)

// IsEqual reports whether a and b differ by at most the tolerance of T.
// Values are logical (already decoded); NaN is never equal to anything.
func IsEqual[T fixed.Scalar](a, b T, opts ...Option) bool {
	o := gatherOptions[T](opts)

	return within(float64(a), float64(b), o)
}

// IsZero reports whether a is within the tolerance of T from zero.
func IsZero[T fixed.Scalar](a T, opts ...Option) bool {
	return IsEqual(a, 0, opts...)
}

// IsEqualFloat compares two float64 values with the tolerance policy of T.
// The transform types use it for results computed in float64 on behalf of T.
func IsEqualFloat[T fixed.Scalar](a, b float64, opts ...Option) bool {
	return within(a, b, gatherOptions[T](opts))
}

func within(a, b float64, o Options) bool {
	if a == b {
		return true
	}
	eps := o.epsilon
	if o.relative {
		eps *= math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	}

	return math.Abs(a-b) <= eps
}
