// SPDX-License-Identifier: MIT

package affine

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/trsmath/approx"
	"github.com/katalvlaran/trsmath/fixed"
)

// Matrix3x3 is a plain 3×3 matrix stored column-major (m[col][row]).
// Like Vector3 it holds logical values; integral T uses ordinary integer
// arithmetic. The fixed-point minors of Matrix4x4 use their own widened
// routine instead.
type Matrix3x3[T fixed.Scalar] struct {
	m [3][3]T
}

// NewMatrix3x3 builds a matrix from nine values given row-major.
func NewMatrix3x3[T fixed.Scalar](
	m00, m01, m02,
	m10, m11, m12,
	m20, m21, m22 T,
) Matrix3x3[T] {
	return Matrix3x3[T]{m: [3][3]T{
		{m00, m10, m20},
		{m01, m11, m21},
		{m02, m12, m22},
	}}
}

// Identity3 returns the 3×3 identity.
func Identity3[T fixed.Scalar]() Matrix3x3[T] {
	return NewMatrix3x3[T](1, 0, 0, 0, 1, 0, 0, 0, 1)
}

// At returns element (row, col). Panics on an out-of-range index.
func (a Matrix3x3[T]) At(row, col int) T {
	mustRowCol(row, col, 3)

	return a.m[col][row]
}

// Set assigns element (row, col). Panics on an out-of-range index.
func (a *Matrix3x3[T]) Set(row, col int, v T) {
	mustRowCol(row, col, 3)
	a.m[col][row] = v
}

// Column returns column c as a vector.
func (a Matrix3x3[T]) Column(c int) Vector3[T] {
	mustIndex(c, 3)

	return Vector3[T]{a.m[c][0], a.m[c][1], a.m[c][2]}
}

// Determinant expands along the first row.
func (a Matrix3x3[T]) Determinant() T {
	m := &a.m

	return m[0][0]*(m[1][1]*m[2][2]-m[2][1]*m[1][2]) -
		m[1][0]*(m[0][1]*m[2][2]-m[2][1]*m[0][2]) +
		m[2][0]*(m[0][1]*m[1][2]-m[1][1]*m[0][2])
}

// Transposed returns aᵀ.
func (a Matrix3x3[T]) Transposed() Matrix3x3[T] {
	var out Matrix3x3[T]
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out.m[c][r] = a.m[r][c]
		}
	}

	return out
}

// Mul returns a × b.
func (a Matrix3x3[T]) Mul(b Matrix3x3[T]) Matrix3x3[T] {
	var out Matrix3x3[T]
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out.m[c][r] = a.m[0][r]*b.m[c][0] + a.m[1][r]*b.m[c][1] + a.m[2][r]*b.m[c][2]
		}
	}

	return out
}

// MulVec returns a × v.
func (a Matrix3x3[T]) MulVec(v Vector3[T]) Vector3[T] {
	return Vector3[T]{
		a.m[0][0]*v.X + a.m[1][0]*v.Y + a.m[2][0]*v.Z,
		a.m[0][1]*v.X + a.m[1][1]*v.Y + a.m[2][1]*v.Z,
		a.m[0][2]*v.X + a.m[1][2]*v.Y + a.m[2][2]*v.Z,
	}
}

// IsEqual compares element-wise within the tolerance of T.
func (a Matrix3x3[T]) IsEqual(b Matrix3x3[T], opts ...approx.Option) bool {
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			if !approx.IsEqual(a.m[c][r], b.m[c][r], opts...) {
				return false
			}
		}
	}

	return true
}

// String prints the matrix row by row.
func (a Matrix3x3[T]) String() string {
	var sb strings.Builder
	for r := 0; r < 3; r++ {
		fmt.Fprintf(&sb, "[%v %v %v]", a.m[0][r], a.m[1][r], a.m[2][r])
		if r < 2 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
