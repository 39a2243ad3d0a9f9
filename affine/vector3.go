// SPDX-License-Identifier: MIT

package affine

import (
	"fmt"
	"math"

	"github.com/katalvlaran/trsmath/approx"
	"github.com/katalvlaran/trsmath/fixed"
)

// Vector3 is a plain 3-component vector. It holds logical values for every
// scalar kind; no fixed-point encoding is applied.
type Vector3[T fixed.Scalar] struct {
	X, Y, Z T
}

// NewVector3 returns (x, y, z).
func NewVector3[T fixed.Scalar](x, y, z T) Vector3[T] {
	return Vector3[T]{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vector3[T]) Add(o Vector3[T]) Vector3[T] { return Vector3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vector3[T]) Sub(o Vector3[T]) Vector3[T] { return Vector3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Mul scales every component by s.
func (v Vector3[T]) Mul(s T) Vector3[T] { return Vector3[T]{v.X * s, v.Y * s, v.Z * s} }

// Div divides every component by s. Panics if s is zero.
func (v Vector3[T]) Div(s T) Vector3[T] {
	mustNonZero(s)

	return Vector3[T]{v.X / s, v.Y / s, v.Z / s}
}

// Dot returns the dot product v·o.
func (v Vector3[T]) Dot(o Vector3[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the right-handed cross product v × o.
func (v Vector3[T]) Cross(o Vector3[T]) Vector3[T] {
	return Vector3[T]{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length as a float64.
func (v Vector3[T]) Length() float64 {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)

	return math.Sqrt(x*x + y*y + z*z)
}

// Normalized returns v scaled to unit length, or ErrZeroLength.
func (v Vector3[T]) Normalized() (Vector3[T], error) {
	l := v.Length()
	if approx.IsEqualFloat[T](l, 0, approx.WithEpsilon(zeroLength[T]())) {
		return v, affineErrorf(opNormalize, ErrZeroLength)
	}

	return Vector3[T]{
		fixed.FromFloat[T](float64(v.X) / l),
		fixed.FromFloat[T](float64(v.Y) / l),
		fixed.FromFloat[T](float64(v.Z) / l),
	}, nil
}

// IsEqual compares component-wise within the tolerance of T.
func (v Vector3[T]) IsEqual(o Vector3[T], opts ...approx.Option) bool {
	return approx.IsEqual(v.X, o.X, opts...) &&
		approx.IsEqual(v.Y, o.Y, opts...) &&
		approx.IsEqual(v.Z, o.Z, opts...)
}

// String prints v as (x, y, z).
func (v Vector3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}
