// SPDX-License-Identifier: MIT

package affine

import (
	"fmt"
	"math"

	"github.com/katalvlaran/trsmath/approx"
	"github.com/katalvlaran/trsmath/fixed"
)

// Vector4 is a homogeneous 4-component vector (x, y, z, w).
// w == 1 marks a point and w == 0 a direction.
//
// For integral T components are stored in Q16.16; the zero value is the
// zero vector for every kind.
type Vector4[T fixed.Scalar] struct {
	v [4]T
}

// NewVector4 returns (x, y, z, w), encoding each component.
func NewVector4[T fixed.Scalar](x, y, z, w T) Vector4[T] {
	return Vector4[T]{v: [4]T{fixed.Encode(x), fixed.Encode(y), fixed.Encode(z), fixed.Encode(w)}}
}

// Point returns (x, y, z, 1).
func Point[T fixed.Scalar](x, y, z T) Vector4[T] { return NewVector4(x, y, z, 1) }

// Direction returns (x, y, z, 0).
func Direction[T fixed.Scalar](x, y, z T) Vector4[T] { return NewVector4(x, y, z, 0) }

// Vector4FromRaw builds a vector from already-encoded components.
func Vector4FromRaw[T fixed.Scalar](x, y, z, w T) Vector4[T] {
	return Vector4[T]{v: [4]T{x, y, z, w}}
}

// X returns the logical x component.
func (a Vector4[T]) X() T { return fixed.Decode(a.v[0]) }

// Y returns the logical y component.
func (a Vector4[T]) Y() T { return fixed.Decode(a.v[1]) }

// Z returns the logical z component.
func (a Vector4[T]) Z() T { return fixed.Decode(a.v[2]) }

// W returns the logical w component: 1 for points, 0 for directions.
func (a Vector4[T]) W() T { return fixed.Decode(a.v[3]) }

// At returns the logical value of component i. Panics unless 0 <= i < 4.
func (a Vector4[T]) At(i int) T {
	mustIndex(i, 4)

	return fixed.Decode(a.v[i])
}

// Set encodes and stores the logical value x at component i.
func (a *Vector4[T]) Set(i int, x T) {
	mustIndex(i, 4)
	a.v[i] = fixed.Encode(x)
}

// Raw returns the stored value of component i without conversion.
func (a Vector4[T]) Raw(i int) T {
	mustIndex(i, 4)

	return a.v[i]
}

// SetRaw stores raw at component i without conversion.
func (a *Vector4[T]) SetRaw(i int, raw T) {
	mustIndex(i, 4)
	a.v[i] = raw
}

// AddAt adds the logical value x to component i.
// The compound accessors decode, operate on the logical value and encode.
func (a *Vector4[T]) AddAt(i int, x T) {
	mustIndex(i, 4)
	a.v[i] = fixed.Encode(fixed.Decode(a.v[i]) + x)
}

// SubAt subtracts the logical value x from component i.
func (a *Vector4[T]) SubAt(i int, x T) {
	mustIndex(i, 4)
	a.v[i] = fixed.Encode(fixed.Decode(a.v[i]) - x)
}

// MulAt multiplies component i by the logical value x.
func (a *Vector4[T]) MulAt(i int, x T) {
	mustIndex(i, 4)
	a.v[i] = fixed.Encode(fixed.Decode(a.v[i]) * x)
}

// DivAt divides component i by the logical value x. Panics if x is zero.
func (a *Vector4[T]) DivAt(i int, x T) {
	mustIndex(i, 4)
	mustNonZero(x)
	a.v[i] = fixed.Encode(fixed.Decode(a.v[i]) / x)
}

// IsPoint reports whether w is exactly 1.
func (a Vector4[T]) IsPoint() bool { return a.v[3] == fixed.Encode[T](1) }

// IsDirection reports whether w is exactly 0.
func (a Vector4[T]) IsDirection() bool { return a.v[3] == 0 }

// Add returns a + b component-wise.
func (a Vector4[T]) Add(b Vector4[T]) Vector4[T] {
	return Vector4[T]{v: [4]T{a.v[0] + b.v[0], a.v[1] + b.v[1], a.v[2] + b.v[2], a.v[3] + b.v[3]}}
}

// Sub returns a - b component-wise.
func (a Vector4[T]) Sub(b Vector4[T]) Vector4[T] {
	return Vector4[T]{v: [4]T{a.v[0] - b.v[0], a.v[1] - b.v[1], a.v[2] - b.v[2], a.v[3] - b.v[3]}}
}

// Neg returns -a.
func (a Vector4[T]) Neg() Vector4[T] {
	return Vector4[T]{v: [4]T{-a.v[0], -a.v[1], -a.v[2], -a.v[3]}}
}

// Mul scales every component by the logical scalar s.
func (a Vector4[T]) Mul(s T) Vector4[T] {
	return Vector4[T]{v: [4]T{scaleRaw(a.v[0], s), scaleRaw(a.v[1], s), scaleRaw(a.v[2], s), scaleRaw(a.v[3], s)}}
}

// Div divides every component by the logical scalar s. Panics if s is zero.
func (a Vector4[T]) Div(s T) Vector4[T] {
	mustNonZero(s)

	return Vector4[T]{v: [4]T{a.v[0] / s, a.v[1] / s, a.v[2] / s, a.v[3] / s}}
}

// Dot returns the logical dot product over all four components.
func (a Vector4[T]) Dot(b Vector4[T]) T {
	if !fixed.IsIntegral[T]() {
		return a.v[0]*b.v[0] + a.v[1]*b.v[1] + a.v[2]*b.v[2] + a.v[3]*b.v[3]
	}
	var acc int64
	for i := 0; i < 4; i++ {
		acc += int64(a.v[i]) * int64(b.v[i])
	}

	return fixed.Decode(fixed.Wrap[T](acc >> fixed.Shift))
}

// Length returns the logical Euclidean length over all four components.
func (a Vector4[T]) Length() float64 {
	var sum float64
	for i := 0; i < 4; i++ {
		f := fixed.DecodeFloat(a.v[i])
		sum += f * f
	}

	return math.Sqrt(sum)
}

// Normalize scales a to unit length in place.
// Returns ErrZeroLength and leaves a untouched if its length is zero.
func (a *Vector4[T]) Normalize() error {
	n, err := a.Normalized()
	if err != nil {
		return err
	}
	*a = n

	return nil
}

// Normalized returns a scaled to unit length, or ErrZeroLength.
func (a Vector4[T]) Normalized() (Vector4[T], error) {
	l := a.Length()
	if approx.IsEqualFloat[T](l, 0, approx.WithEpsilon(zeroLength[T]())) {
		return a, affineErrorf(opNormalize, ErrZeroLength)
	}
	var out Vector4[T]
	for i := 0; i < 4; i++ {
		out.v[i] = fixed.EncodeFloat[T](fixed.DecodeFloat(a.v[i]) / l)
	}

	return out, nil
}

// Vec3 returns the logical (x, y, z) part.
func (a Vector4[T]) Vec3() Vector3[T] {
	return Vector3[T]{a.X(), a.Y(), a.Z()}
}

// Equal reports exact equality of the stored components.
func (a Vector4[T]) Equal(b Vector4[T]) bool { return a.v == b.v }

// IsEqual compares logical components within the tolerance of T. Integral
// components are compared with their fractional bits.
func (a Vector4[T]) IsEqual(b Vector4[T], opts ...approx.Option) bool {
	for i := 0; i < 4; i++ {
		if !approx.IsEqualFloat[T](fixed.DecodeFloat(a.v[i]), fixed.DecodeFloat(b.v[i]), opts...) {
			return false
		}
	}

	return true
}

// String prints the logical components, fractions included.
func (a Vector4[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)",
		fixed.DecodeFloat(a.v[0]), fixed.DecodeFloat(a.v[1]), fixed.DecodeFloat(a.v[2]), fixed.DecodeFloat(a.v[3]))
}

// zeroLength is the length under which normalization fails: one raw unit
// for integral T, the kind's degenerate threshold otherwise.
func zeroLength[T fixed.Scalar]() float64 {
	degenerate, _ := tolerances[T]()

	return degenerate
}
