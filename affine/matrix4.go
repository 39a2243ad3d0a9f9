// SPDX-License-Identifier: MIT

package affine

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/trsmath/approx"
	"github.com/katalvlaran/trsmath/fixed"
)

// Matrix4x4 is a 4×4 matrix stored column-major: m[col][row].
//
// No invariant forces affine form; the bottom row is whatever the caller
// stores. The factories produce affine matrices by convention.
//
// For integral T every element is stored in Q16.16. The zero value is the
// zero matrix for every kind.
type Matrix4x4[T fixed.Scalar] struct {
	m [4][4]T
}

// Zero returns the zero matrix.
func Zero[T fixed.Scalar]() Matrix4x4[T] { return Matrix4x4[T]{} }

// Identity returns the identity matrix.
func Identity[T fixed.Scalar]() Matrix4x4[T] { return Diagonal[T](1, 1, 1, 1) }

// Diagonal returns a matrix with d0..d3 on the main diagonal and zeros elsewhere.
func Diagonal[T fixed.Scalar](d0, d1, d2, d3 T) Matrix4x4[T] {
	var out Matrix4x4[T]
	out.m[0][0] = fixed.Encode(d0)
	out.m[1][1] = fixed.Encode(d1)
	out.m[2][2] = fixed.Encode(d2)
	out.m[3][3] = fixed.Encode(d3)

	return out
}

// NewMatrix4x4 builds a matrix from sixteen logical values given row-major.
func NewMatrix4x4[T fixed.Scalar](
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 T,
) Matrix4x4[T] {
	rows := [4][4]T{
		{m00, m01, m02, m03},
		{m10, m11, m12, m13},
		{m20, m21, m22, m23},
		{m30, m31, m32, m33},
	}
	var out Matrix4x4[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out.m[c][r] = fixed.Encode(rows[r][c])
		}
	}

	return out
}

// FromColumns builds a matrix whose columns are c0..c3.
func FromColumns[T fixed.Scalar](c0, c1, c2, c3 Vector4[T]) Matrix4x4[T] {
	return Matrix4x4[T]{m: [4][4]T{c0.v, c1.v, c2.v, c3.v}}
}

// ---------- Element access ----------

// At returns the logical value of element (row, col).
// Panics on an out-of-range index.
func (a Matrix4x4[T]) At(row, col int) T {
	mustRowCol(row, col, 4)

	return fixed.Decode(a.m[col][row])
}

// Set encodes and stores the logical value v at (row, col).
func (a *Matrix4x4[T]) Set(row, col int, v T) {
	mustRowCol(row, col, 4)
	a.m[col][row] = fixed.Encode(v)
}

// Index returns the logical value at the column-major flat index i (0..15).
func (a Matrix4x4[T]) Index(i int) T {
	mustIndex(i, 16)

	return fixed.Decode(a.m[i/4][i%4])
}

// SetIndex encodes and stores v at the column-major flat index i.
func (a *Matrix4x4[T]) SetIndex(i int, v T) {
	mustIndex(i, 16)
	a.m[i/4][i%4] = fixed.Encode(v)
}

// Raw returns the stored value at the column-major flat index i, unconverted.
func (a Matrix4x4[T]) Raw(i int) T {
	mustIndex(i, 16)

	return a.m[i/4][i%4]
}

// SetRaw stores raw at the column-major flat index i, unconverted.
func (a *Matrix4x4[T]) SetRaw(i int, raw T) {
	mustIndex(i, 16)
	a.m[i/4][i%4] = raw
}

// AddAt adds the logical value v to element (row, col).
// Like the other compound accessors it decodes the element, applies the
// operation to the logical value and encodes the result, so integral
// storage behaves like an integer variable.
func (a *Matrix4x4[T]) AddAt(row, col int, v T) {
	mustRowCol(row, col, 4)
	a.m[col][row] = fixed.Encode(fixed.Decode(a.m[col][row]) + v)
}

// SubAt subtracts the logical value v from element (row, col).
func (a *Matrix4x4[T]) SubAt(row, col int, v T) {
	mustRowCol(row, col, 4)
	a.m[col][row] = fixed.Encode(fixed.Decode(a.m[col][row]) - v)
}

// MulAt multiplies element (row, col) by the logical value v.
func (a *Matrix4x4[T]) MulAt(row, col int, v T) {
	mustRowCol(row, col, 4)
	a.m[col][row] = fixed.Encode(fixed.Decode(a.m[col][row]) * v)
}

// DivAt divides element (row, col) by the logical value v. Panics if v is
// zero, leaving the element untouched.
func (a *Matrix4x4[T]) DivAt(row, col int, v T) {
	mustRowCol(row, col, 4)
	mustNonZero(v)
	a.m[col][row] = fixed.Encode(fixed.Decode(a.m[col][row]) / v)
}

// Column returns column c.
func (a Matrix4x4[T]) Column(c int) Vector4[T] {
	mustIndex(c, 4)

	return Vector4[T]{v: a.m[c]}
}

// Row returns row r.
func (a Matrix4x4[T]) Row(r int) Vector4[T] {
	mustIndex(r, 4)

	return Vector4[T]{v: [4]T{a.m[0][r], a.m[1][r], a.m[2][r], a.m[3][r]}}
}

// SetColumn replaces column c.
func (a *Matrix4x4[T]) SetColumn(c int, v Vector4[T]) {
	mustIndex(c, 4)
	a.m[c] = v.v
}

// SetRow replaces row r.
func (a *Matrix4x4[T]) SetRow(r int, v Vector4[T]) {
	mustIndex(r, 4)
	for c := 0; c < 4; c++ {
		a.m[c][r] = v.v[c]
	}
}

// ---------- Arithmetic (stored domain) ----------

// Add returns a + b element-wise.
func (a Matrix4x4[T]) Add(b Matrix4x4[T]) Matrix4x4[T] {
	a.AddAssign(&b)

	return a
}

// Sub returns a - b element-wise.
func (a Matrix4x4[T]) Sub(b Matrix4x4[T]) Matrix4x4[T] {
	a.SubAssign(&b)

	return a
}

// MulScalar scales every element by the logical scalar s.
func (a Matrix4x4[T]) MulScalar(s T) Matrix4x4[T] {
	a.MulScalarAssign(s)

	return a
}

// DivScalar divides every element by the logical scalar s. Panics if s is zero.
func (a Matrix4x4[T]) DivScalar(s T) Matrix4x4[T] {
	a.DivScalarAssign(s)

	return a
}

// Mul returns the composition a × b (b applied first).
func (a Matrix4x4[T]) Mul(b Matrix4x4[T]) Matrix4x4[T] {
	var out Matrix4x4[T]
	mulInto(&out, &a, &b)

	return out
}

// MulVec applies a to v.
func (a Matrix4x4[T]) MulVec(v Vector4[T]) Vector4[T] {
	var out Vector4[T]
	mulVecInto(&out, &a, &v)

	return out
}

// AddAssign performs a += b.
func (a *Matrix4x4[T]) AddAssign(b *Matrix4x4[T]) {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			a.m[c][r] += b.m[c][r]
		}
	}
}

// SubAssign performs a -= b.
func (a *Matrix4x4[T]) SubAssign(b *Matrix4x4[T]) {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			a.m[c][r] -= b.m[c][r]
		}
	}
}

// MulAssign performs a = a × b. Safe when b == a.
func (a *Matrix4x4[T]) MulAssign(b *Matrix4x4[T]) {
	Multiply(a, a, b)
}

// MulScalarAssign scales a in place by the logical scalar s.
func (a *Matrix4x4[T]) MulScalarAssign(s T) {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			a.m[c][r] = scaleRaw(a.m[c][r], s)
		}
	}
}

// DivScalarAssign divides a in place by the logical scalar s.
// Panics if s is zero, leaving a untouched.
func (a *Matrix4x4[T]) DivScalarAssign(s T) {
	mustNonZero(s)
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			a.m[c][r] /= s
		}
	}
}

// ---------- Comparison ----------

// Equal reports exact equality of the stored elements.
func (a Matrix4x4[T]) Equal(b Matrix4x4[T]) bool { return a.m == b.m }

// IsEqual compares logical elements within the tolerance of T. Integral
// elements are compared with their fractional bits, so a tighter
// approx.WithEpsilon sees sub-unit differences.
func (a Matrix4x4[T]) IsEqual(b Matrix4x4[T], opts ...approx.Option) bool {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			if !approx.IsEqualFloat[T](fixed.DecodeFloat(a.m[c][r]), fixed.DecodeFloat(b.m[c][r]), opts...) {
				return false
			}
		}
	}

	return true
}

// String prints the logical values row by row.
func (a Matrix4x4[T]) String() string {
	var sb strings.Builder
	for r := 0; r < 4; r++ {
		fmt.Fprintf(&sb, "[%v %v %v %v]",
			fixed.DecodeFloat(a.m[0][r]), fixed.DecodeFloat(a.m[1][r]),
			fixed.DecodeFloat(a.m[2][r]), fixed.DecodeFloat(a.m[3][r]))
		if r < 3 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
