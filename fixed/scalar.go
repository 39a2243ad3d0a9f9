// SPDX-License-Identifier: MIT

package fixed

import "golang.org/x/exp/constraints"

// Scalar is the set of scalar types the transform types accept.
// Integer types narrower than 32 bits are excluded: a Q16.16 value does not fit.
type Scalar interface {
	~int | ~int32 | ~int64 | constraints.Float
}

// Kind classifies a Scalar type parameter.
type Kind int

const (
	// KindFixed marks integral scalars stored in Q16.16.
	KindFixed Kind = iota
	// KindFloat32 marks single-precision real scalars.
	KindFloat32
	// KindFloat64 marks double-precision real scalars.
	KindFloat64
)

// String returns a short human-readable name of k.
func (k Kind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	default:
		return "unknown"
	}
}

// IsIntegral reports whether T is an integral scalar.
// The answer depends on T only: 1/2 truncates to zero for integers.
func IsIntegral[T Scalar]() bool {
	var half T = 1
	half /= 2

	return half == 0
}

// KindOf returns the Kind of T.
func KindOf[T Scalar]() Kind {
	if IsIntegral[T]() {
		return KindFixed
	}
	// 1+1e-12 collapses to 1 in single precision only.
	probe := 1 + 1e-12
	if T(probe) == 1 {
		return KindFloat32
	}

	return KindFloat64
}
